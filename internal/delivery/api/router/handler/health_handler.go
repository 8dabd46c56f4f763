package handler

import (
	"net/http"

	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness plus which engines are active.
type HealthHandler struct {
	predictionUC usecase.PredictionUsecase
	routeUC      usecase.RouteUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(predictionUC usecase.PredictionUsecase, routeUC usecase.RouteUsecase) *HealthHandler {
	return &HealthHandler{
		predictionUC: predictionUC,
		routeUC:      routeUC,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status          string `json:"status"`
	ModelLoaded     bool   `json:"model_loaded"`
	RoutingProvider string `json:"routing_provider"`
}

// Health handles GET /health. It is served without the envelope for load balancers.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:          "ok",
		ModelLoaded:     h.predictionUC.IsTrained(),
		RoutingProvider: h.routeUC.ProviderName(),
	})
}
