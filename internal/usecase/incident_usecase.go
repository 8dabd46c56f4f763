package usecase

import (
	"context"
	"time"

	"routecast/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportIncidentInput is a new incident report.
type ReportIncidentInput struct {
	Location         entity.GeoPoint     `json:"location" validate:"required"`
	Type             entity.IncidentType `json:"type" validate:"required"`
	Severity         entity.Severity     `json:"severity,omitempty"`
	Description      string              `json:"description,omitempty" validate:"max=500"`
	ExpiresInMinutes int                 `json:"expires_in_minutes,omitempty" validate:"omitempty,min=1,max=1440"`
}

// IncidentUsecase manages incident reports and correlates them with routes.
type IncidentUsecase interface {
	ReportIncident(ctx context.Context, input *ReportIncidentInput) (*entity.Incident, error)
	ConfirmIncident(ctx context.Context, id uuid.UUID) (*entity.Incident, error)
	DismissIncident(ctx context.Context, id uuid.UUID) error

	// ActiveIncidents returns live incidents newest first, within radiusKm of center when one is given.
	ActiveIncidents(ctx context.Context, now time.Time, center *entity.GeoPoint, radiusKm float64) ([]*entity.Incident, error)

	// IncidentsOnRoute returns live incidents within thresholdKm of a sampled path vertex.
	// A non-positive threshold uses the configured default.
	IncidentsOnRoute(ctx context.Context, route *entity.RoutePolyline, thresholdKm float64) ([]*entity.Incident, error)

	IncidentTypes() []entity.IncidentTypeInfo
}
