package handler

import (
	"net/http"

	"routecast/internal/delivery/api/response"
	"routecast/internal/domain/entity"
	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WeatherHandler serves current conditions.
type WeatherHandler struct {
	weatherUC usecase.WeatherUsecase
}

// NewWeatherHandler is the constructor for WeatherHandler
func NewWeatherHandler(weatherUC usecase.WeatherUsecase) *WeatherHandler {
	return &WeatherHandler{weatherUC: weatherUC}
}

// CurrentWeather handles GET /weather.
func (h *WeatherHandler) CurrentWeather(c echo.Context) error {
	var point entity.GeoPoint
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &point.Lat).
		MustFloat64("lng", &point.Lng).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng are required numbers")
	}
	if !point.IsValid() {
		return response.BadRequest(c, "INVALID_COORDINATE", "Coordinate is out of range")
	}

	return response.Success(c, http.StatusOK, h.weatherUC.CurrentWeather(c.Request().Context(), point))
}
