package handler

import (
	"log/slog"
	"net/http"

	"routecast/internal/delivery/api/response"
	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultTripLimit     = 100
	defaultSimilarLimit  = 50
	defaultSimilarRadius = 1.0
	maxTripLimit         = 1000
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC       usecase.TripUsecase
	TrainingUC   usecase.TrainingUsecase
	PredictionUC usecase.PredictionUsecase
	Logger       *slog.Logger
}

// TripHandler serves trip history and model training.
type TripHandler struct {
	tripUC       usecase.TripUsecase
	trainingUC   usecase.TrainingUsecase
	predictionUC usecase.PredictionUsecase
	logger       *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC:       params.TripUC,
		trainingUC:   params.TrainingUC,
		predictionUC: params.PredictionUC,
		logger:       params.Logger,
	}
}

// RecordTrip handles POST /trips.
func (h *TripHandler) RecordTrip(c echo.Context) error {
	var input usecase.RecordTripInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	trip, err := h.tripUC.RecordTrip(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, trip)
}

// ListTrips handles GET /trips.
func (h *TripHandler) ListTrips(c echo.Context) error {
	limit := defaultTripLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil || limit <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
	}
	limit = min(limit, maxTripLimit)

	trips, err := h.tripUC.ListTrips(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(trips))
}

// CountTrips handles GET /trips/count.
func (h *TripHandler) CountTrips(c echo.Context) error {
	count, err := h.tripUC.CountTrips(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, count)
}

// SimilarTrips handles GET /trips/similar.
func (h *TripHandler) SimilarTrips(c echo.Context) error {
	query := usecase.SimilarTripsQuery{
		RadiusKm: defaultSimilarRadius,
		Limit:    defaultSimilarLimit,
	}
	err := echo.QueryParamsBinder(c).
		MustFloat64("start_lat", &query.Start.Lat).
		MustFloat64("start_lng", &query.Start.Lng).
		MustFloat64("end_lat", &query.End.Lat).
		MustFloat64("end_lng", &query.End.Lng).
		Float64("radius_km", &query.RadiusKm).
		Int("limit", &query.Limit).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "start_lat, start_lng, end_lat and end_lng are required numbers")
	}
	if !query.Start.IsValid() || !query.End.IsValid() {
		return response.BadRequest(c, "INVALID_COORDINATE", "Coordinate is out of range")
	}
	if query.RadiusKm <= 0 || query.Limit <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "radius_km and limit must be positive")
	}
	query.Limit = min(query.Limit, maxTripLimit)

	trips, err := h.tripUC.SimilarTrips(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(trips))
}

// TrainModel handles POST /trips/train.
func (h *TripHandler) TrainModel(c echo.Context) error {
	report, err := h.trainingUC.TrainFromHistory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ModelStatus handles GET /trips/model-status.
func (h *TripHandler) ModelStatus(c echo.Context) error {
	status, err := h.tripUC.ModelStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// ReloadModel handles POST /trips/model/reload.
func (h *TripHandler) ReloadModel(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.predictionUC.ReloadModel(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.tripUC.ModelStatus(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

