package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/metrics"
	"routecast/internal/usecase"

	"go.uber.org/fx"
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	provider service.WeatherProvider
	cache    service.WeatherCache
	ttl      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Provider service.WeatherProvider
	Cache    service.WeatherCache `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		provider: params.Provider,
		cache:    params.Cache,
		ttl:      params.Config.Weather.CacheTTL,
		timeout:  params.Config.Weather.RequestTimeout,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentWeather serves from cache, then the provider, then the neutral placeholder.
func (srv *weatherService) CurrentWeather(ctx context.Context, point entity.GeoPoint) *entity.WeatherSnapshot {
	key := weatherCacheKey(point)

	if srv.cache != nil {
		if snapshot, ok := srv.cache.Get(ctx, key); ok {
			metrics.WeatherLookups.WithLabelValues(metrics.SourceCache).Inc()

			return snapshot
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	snapshot, err := srv.provider.CurrentWeather(lookupCtx, point)
	if err != nil {
		metrics.WeatherLookups.WithLabelValues(metrics.SourceFallback).Inc()
		level := slog.LevelWarn
		if errors.Is(err, service.ErrWeatherUnconfigured) {
			level = slog.LevelDebug
		}
		srv.log(ctx).Log(ctx, level, "Weather unavailable, using placeholder", slog.Any("error", err))

		return entity.NeutralWeather()
	}

	metrics.WeatherLookups.WithLabelValues(metrics.SourceProvider).Inc()
	if srv.cache != nil {
		srv.cache.Set(ctx, key, snapshot, srv.ttl)
	}

	return snapshot
}

// weatherCacheKey buckets coordinates to two decimals, roughly 1 km.
func weatherCacheKey(point entity.GeoPoint) string {
	return fmt.Sprintf("weather:%.2f:%.2f", point.Lat, point.Lng)
}
