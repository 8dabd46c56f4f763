package service

import (
	"context"
	"time"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"
)

// ErrWeatherUnconfigured is returned by providers that have no credentials.
var ErrWeatherUnconfigured = errors.New("weather provider is not configured")

// WeatherProvider looks up current conditions at a point.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, point entity.GeoPoint) (*entity.WeatherSnapshot, error)
}

// WeatherCache stores recent weather snapshots by key.
type WeatherCache interface {
	// Get returns the cached snapshot and whether it was found.
	Get(ctx context.Context, key string) (*entity.WeatherSnapshot, bool)

	// Set stores a snapshot for ttl. Failures are not reported to callers.
	Set(ctx context.Context, key string, snapshot *entity.WeatherSnapshot, ttl time.Duration)
}
