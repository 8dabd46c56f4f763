package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	mockUsecase "routecast/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	predictionUC := mockUsecase.NewMockPredictionUsecase(t)
	routeUC := mockUsecase.NewMockRouteUsecase(t)
	predictionUC.EXPECT().IsTrained().Return(true)
	routeUC.EXPECT().ProviderName().Return("osrm")

	e := newTestEcho()
	e.GET("/health", NewHealthHandler(predictionUC, routeUC).Health)

	rec := doRequest(e, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, HealthResponse{Status: "ok", ModelLoaded: true, RoutingProvider: "osrm"}, body)
}
