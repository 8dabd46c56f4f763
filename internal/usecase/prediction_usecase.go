// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"routecast/internal/domain/entity"
)

// PredictInput carries everything the engine needs to adjust a base duration.
// Hour and DayOfWeek default to the current wall-clock time when nil.
// Temperature defaults to prediction.DefaultTemperature when nil.
type PredictInput struct {
	BaseDuration       float64  `json:"base_duration" validate:"gte=0"`
	Distance           float64  `json:"distance" validate:"gte=0"`
	WeatherCondition   string   `json:"weather_condition"`
	Temperature        *float64 `json:"temperature,omitempty"`
	Hour               *int     `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	DayOfWeek          *int     `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	IsHoliday          bool     `json:"is_holiday"`
	IncidentCount      int      `json:"incident_count" validate:"gte=0"`
	IncidentSeverities []string `json:"incident_severities"`
}

// PredictionUsecase serves duration predictions and owns the active learned model.
type PredictionUsecase interface {
	// Predict always returns a result; learned-model failures fall back to heuristics.
	Predict(ctx context.Context, input *PredictInput) *entity.PredictionResult

	// ReloadModel replaces the active model with the stored artifact.
	// A missing artifact leaves the current model in place and returns nil.
	ReloadModel(ctx context.Context) error

	// IsTrained reports whether a learned model is active.
	IsTrained() bool

	// TrainedAt returns when the active model was fitted, or false on heuristics.
	TrainedAt() (time.Time, bool)
}
