// Package cache keeps short-lived lookups in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/lifecycle"
	"routecast/internal/domain/service"
	"routecast/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the Redis client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewWeatherCache connects to Redis and returns a WeatherCache, or nil when Redis is disabled.
func NewWeatherCache(params Params) (service.WeatherCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, weather lookups are not cached")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisWeatherCache(client, params.Logger), nil
}

// RedisWeatherCache stores snapshots as JSON strings with a TTL.
type RedisWeatherCache struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisWeatherCache wraps an existing client.
func NewRedisWeatherCache(client redis.UniversalClient, logger *slog.Logger) *RedisWeatherCache {
	return &RedisWeatherCache{client: client, logger: logger}
}

// Get treats misses, Redis errors and undecodable values alike as a miss.
func (c *RedisWeatherCache) Get(ctx context.Context, key string) (*entity.WeatherSnapshot, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Weather cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var snapshot entity.WeatherSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.logger.WarnContext(ctx, "Discarding malformed weather cache entry", slog.String("key", key))

		return nil, false
	}

	return &snapshot, true
}

// Set stores snapshot for ttl. Errors are logged only.
func (c *RedisWeatherCache) Set(ctx context.Context, key string, snapshot *entity.WeatherSnapshot, ttl time.Duration) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.WarnContext(ctx, "Weather snapshot not cacheable", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Weather cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
