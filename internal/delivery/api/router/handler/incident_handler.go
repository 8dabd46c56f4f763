package handler

import (
	"log/slog"
	"net/http"
	"time"

	"routecast/internal/delivery/api/response"
	"routecast/internal/domain/entity"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultIncidentRadiusKm = 10.0

// IncidentHandlerParams holds dependencies for IncidentHandler, injected by Fx.
type IncidentHandlerParams struct {
	fx.In

	IncidentUC usecase.IncidentUsecase
	Logger     *slog.Logger
}

// IncidentHandler serves incident reports.
type IncidentHandler struct {
	incidentUC usecase.IncidentUsecase
	logger     *slog.Logger
	now        func() time.Time
}

// NewIncidentHandler is the constructor for IncidentHandler
func NewIncidentHandler(params IncidentHandlerParams) *IncidentHandler {
	return &IncidentHandler{
		incidentUC: params.IncidentUC,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// OnRouteRequest is a path in [lng, lat] pairs.
type OnRouteRequest struct {
	Coordinates [][]float64 `json:"coordinates" validate:"required,min=2,dive,len=2"`
	ThresholdKm float64     `json:"threshold_km" validate:"gte=0"`
}

// ReportIncident handles POST /incidents.
func (h *IncidentHandler) ReportIncident(c echo.Context) error {
	var input usecase.ReportIncidentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid incident input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	incident, err := h.incidentUC.ReportIncident(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, incident)
}

// ListIncidents handles GET /incidents.
func (h *IncidentHandler) ListIncidents(c echo.Context) error {
	radius := defaultIncidentRadiusKm
	var lat, lng float64
	if err := echo.QueryParamsBinder(c).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius_km", &radius).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid incident query")
	}
	if radius <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "radius_km must be positive")
	}

	var center *entity.GeoPoint
	if c.QueryParam("lat") != "" && c.QueryParam("lng") != "" {
		center = &entity.GeoPoint{Lat: lat, Lng: lng}
		if !center.IsValid() {
			return response.BadRequest(c, "INVALID_COORDINATE", "Coordinate is out of range")
		}
	}

	incidents, err := h.incidentUC.ActiveIncidents(c.Request().Context(), h.now(), center, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(incidents))
}

// IncidentTypes handles GET /incidents/types.
func (h *IncidentHandler) IncidentTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.incidentUC.IncidentTypes())
}

// ConfirmIncident handles POST /incidents/:id/confirm.
func (h *IncidentHandler) ConfirmIncident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	incident, err := h.incidentUC.ConfirmIncident(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incident)
}

// DismissIncident handles POST /incidents/:id/dismiss.
func (h *IncidentHandler) DismissIncident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	if err := h.incidentUC.DismissIncident(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Incident dismissed"})
}

// IncidentsOnRoute handles POST /incidents/on-route.
func (h *IncidentHandler) IncidentsOnRoute(c echo.Context) error {
	var req OnRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	route := &entity.RoutePolyline{Path: entity.PathFromCoordinates(req.Coordinates)}

	incidents, err := h.incidentUC.IncidentsOnRoute(c.Request().Context(), route, req.ThresholdKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(incidents))
}

// nonNil keeps empty lists rendering as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
