package repository

import (
	"context"
	"time"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"

	"github.com/google/uuid"
)

// ErrIncidentNotFound is returned when an incident is not found.
var ErrIncidentNotFound = errors.New("incident not found")

// IncidentRepository defines the interface for incident report persistence.
type IncidentRepository interface {
	// CreateIncident persists a new incident report.
	CreateIncident(ctx context.Context, incident *entity.Incident) error

	// FindIncidentByID retrieves an incident by ID.
	FindIncidentByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error)

	// FindActiveIncidents returns incidents that are active and expire after now, newest first.
	FindActiveIncidents(ctx context.Context, now time.Time) ([]*entity.Incident, error)

	// ConfirmIncident adds one confirmation and moves the expiry to expiresAt.
	// Returns ErrIncidentNotFound if the incident does not exist.
	ConfirmIncident(ctx context.Context, id uuid.UUID, expiresAt time.Time) (*entity.Incident, error)

	// DeactivateIncident marks an incident as no longer active.
	// Returns ErrIncidentNotFound if the incident does not exist.
	DeactivateIncident(ctx context.Context, id uuid.UUID) error
}
