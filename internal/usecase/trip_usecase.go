package usecase

import (
	"context"

	"routecast/internal/domain/entity"
)

// RecordTripInput is a completed journey reported by a client.
type RecordTripInput struct {
	Start             entity.GeoPoint `json:"start" validate:"required"`
	End               entity.GeoPoint `json:"end" validate:"required"`
	StartName         string          `json:"start_name,omitempty"`
	EndName           string          `json:"end_name,omitempty"`
	Distance          float64         `json:"distance" validate:"gte=0"`
	EstimatedDuration float64         `json:"estimated_duration" validate:"gt=0"`
	ActualDuration    float64         `json:"actual_duration" validate:"gt=0"`
	WeatherCondition  *string         `json:"weather_condition,omitempty"`
	Temperature       *float64        `json:"temperature,omitempty"`
	HadIncidents      bool            `json:"had_incidents"`
	IncidentTypes     []string        `json:"incident_types,omitempty"`
}

// SimilarTripsQuery finds trips whose start and end both lie within RadiusKm.
type SimilarTripsQuery struct {
	Start    entity.GeoPoint
	End      entity.GeoPoint
	RadiusKm float64
	Limit    int
}

// TripCount summarizes how much training data exists.
type TripCount struct {
	Count            int64  `json:"count"`
	ReadyForTraining bool   `json:"ready_for_training"`
	Message          string `json:"message"`
}

// TripUsecase records trips and reports on training readiness.
type TripUsecase interface {
	RecordTrip(ctx context.Context, input *RecordTripInput) (*entity.Trip, error)
	ListTrips(ctx context.Context, limit int) ([]*entity.Trip, error)
	CountTrips(ctx context.Context) (*TripCount, error)
	SimilarTrips(ctx context.Context, query *SimilarTripsQuery) ([]*entity.Trip, error)
	ModelStatus(ctx context.Context) (*entity.ModelStatus, error)
}
