package handler

import (
	"log/slog"
	"net/http"

	"routecast/internal/delivery/api/response"
	"routecast/internal/domain/entity"
	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC      usecase.RouteUsecase
	PredictionUC usecase.PredictionUsecase
	Logger       *slog.Logger
}

// RouteHandler serves route calculation and duration prediction.
type RouteHandler struct {
	routeUC      usecase.RouteUsecase
	predictionUC usecase.PredictionUsecase
	logger       *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler, injected by Fx.
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC:      params.RouteUC,
		predictionUC: params.PredictionUC,
		logger:       params.Logger,
	}
}

// RouteResponse is the main route with its prediction.
type RouteResponse struct {
	StartName         string                  `json:"start_name,omitempty"`
	EndName           string                  `json:"end_name,omitempty"`
	Distance          float64                 `json:"distance"`
	Duration          float64                 `json:"duration"`
	PredictedDuration float64                 `json:"predicted_duration"`
	Coordinates       [][]float64             `json:"coordinates"`
	Geometry          *geojson.Geometry       `json:"geometry"`
	Weather           *entity.WeatherSnapshot `json:"weather"`
	IncidentsOnRoute  []*entity.Incident      `json:"incidents_on_route"`
	Confidence        float64                 `json:"confidence"`
	Factors           map[string]float64      `json:"factors"`
}

// RouteOptionResponse is one ranked alternative.
type RouteOptionResponse struct {
	Index             int                `json:"index"`
	IsMain            bool               `json:"is_main"`
	Distance          float64            `json:"distance"`
	Duration          float64            `json:"duration"`
	PredictedDuration float64            `json:"predicted_duration"`
	Coordinates       [][]float64        `json:"coordinates"`
	IncidentsCount    int                `json:"incidents_count"`
	Confidence        float64            `json:"confidence"`
	Factors           map[string]float64 `json:"factors"`
}

// AlternativesResponse lists alternatives fastest first.
type AlternativesResponse struct {
	Weather          *entity.WeatherSnapshot `json:"weather"`
	Routes           []RouteOptionResponse   `json:"routes"`
	RecommendedIndex int                     `json:"recommended_index"`
}

// CalculateRoute handles POST /routes/calculate.
func (h *RouteHandler) CalculateRoute(c echo.Context) error {
	req, err := h.bindRouteRequest(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	result, err := h.routeUC.CalculateRoute(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	incidents := result.Incidents
	if incidents == nil {
		incidents = []*entity.Incident{}
	}

	return response.Success(c, http.StatusOK, RouteResponse{
		StartName:         req.StartName,
		EndName:           req.EndName,
		Distance:          result.Route.Distance,
		Duration:          result.Route.BaseDuration,
		PredictedDuration: result.Prediction.PredictedDuration,
		Coordinates:       result.Route.Coordinates(),
		Geometry:          geojson.NewGeometry(result.Route.Path),
		Weather:           result.Weather,
		IncidentsOnRoute:  incidents,
		Confidence:        result.Prediction.Confidence,
		Factors:           result.Prediction.Factors,
	})
}

// AlternativeRoutes handles POST /routes/alternatives.
func (h *RouteHandler) AlternativeRoutes(c echo.Context) error {
	req, err := h.bindRouteRequest(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	result, err := h.routeUC.AlternativeRoutes(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	routes := make([]RouteOptionResponse, 0, len(result.Options))
	for _, option := range result.Options {
		routes = append(routes, RouteOptionResponse{
			Index:             option.Index,
			IsMain:            option.IsMain,
			Distance:          option.Route.Distance,
			Duration:          option.Route.BaseDuration,
			PredictedDuration: option.Prediction.PredictedDuration,
			Coordinates:       option.Route.Coordinates(),
			IncidentsCount:    len(option.Incidents),
			Confidence:        option.Prediction.Confidence,
			Factors:           option.Prediction.Factors,
		})
	}

	return response.Success(c, http.StatusOK, AlternativesResponse{
		Weather:          result.Weather,
		Routes:           routes,
		RecommendedIndex: result.RecommendedIndex,
	})
}

// PredictDuration handles POST /routes/predict.
func (h *RouteHandler) PredictDuration(c echo.Context) error {
	var input usecase.PredictInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prediction input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	if input.IncidentCount == 0 {
		input.IncidentCount = len(input.IncidentSeverities)
	}

	return response.Success(c, http.StatusOK, h.predictionUC.Predict(c.Request().Context(), &input))
}

// bindRouteRequest returns a nil request when it has already written an error response.
func (h *RouteHandler) bindRouteRequest(c echo.Context) (*usecase.RouteRequest, error) {
	var req usecase.RouteRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationError(c, err)
	}

	return &req, nil
}
