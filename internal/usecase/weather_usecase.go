package usecase

import (
	"context"

	"routecast/internal/domain/entity"
)

// WeatherUsecase answers current weather. It never fails: lookups that cannot
// be served return the neutral placeholder.
type WeatherUsecase interface {
	CurrentWeather(ctx context.Context, point entity.GeoPoint) *entity.WeatherSnapshot
}
