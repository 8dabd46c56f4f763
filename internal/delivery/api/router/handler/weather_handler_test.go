package handler

import (
	"net/http"
	"testing"

	"routecast/internal/domain/entity"
	mockUsecase "routecast/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWeatherHandler_CurrentWeather(t *testing.T) {
	weatherUC := mockUsecase.NewMockWeatherUsecase(t)
	e := newTestEcho()
	e.GET("/weather", NewWeatherHandler(weatherUC).CurrentWeather)

	weatherUC.EXPECT().CurrentWeather(mock.Anything, entity.GeoPoint{Lat: 8.98, Lng: -79.52}).
		Return(&entity.WeatherSnapshot{Condition: entity.WeatherRain, Temperature: 27})

	rec := doRequest(e, http.MethodGet, "/weather?lat=8.98&lng=-79.52", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot entity.WeatherSnapshot
	decodeData(t, rec, &snapshot)
	assert.Equal(t, entity.WeatherRain, snapshot.Condition)

	for _, target := range []string{"/weather", "/weather?lat=8.98", "/weather?lat=x&lng=1", "/weather?lat=8.98&lng=200"} {
		rec = doRequest(e, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
