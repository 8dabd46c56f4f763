package usecase

import (
	"context"

	"routecast/internal/domain/entity"
)

// RouteRequest asks for routes between two points.
// Hour and DayOfWeek override the wall clock for what-if predictions.
// A DayOfWeek override is never treated as a holiday.
type RouteRequest struct {
	Start     entity.GeoPoint `json:"start" validate:"required"`
	End       entity.GeoPoint `json:"end" validate:"required"`
	StartName string          `json:"start_name,omitempty"`
	EndName   string          `json:"end_name,omitempty"`
	Hour      *int            `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	DayOfWeek *int            `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
}

// RoutePrediction is the main route with its predicted duration.
type RoutePrediction struct {
	Route      *entity.RoutePolyline
	Weather    *entity.WeatherSnapshot
	Incidents  []*entity.Incident
	Prediction *entity.PredictionResult
}

// RouteOption is one alternative ranked by predicted duration.
type RouteOption struct {
	Index      int
	IsMain     bool
	Route      *entity.RoutePolyline
	Incidents  []*entity.Incident
	Prediction *entity.PredictionResult
}

// RouteAlternatives lists the options fastest first.
type RouteAlternatives struct {
	Weather          *entity.WeatherSnapshot
	Options          []*RouteOption
	RecommendedIndex int
}

// RouteUsecase combines routing, weather, incidents and prediction.
type RouteUsecase interface {
	CalculateRoute(ctx context.Context, req *RouteRequest) (*RoutePrediction, error)
	AlternativeRoutes(ctx context.Context, req *RouteRequest) (*RouteAlternatives, error)

	// ProviderName identifies the routing engine in use.
	ProviderName() string
}
