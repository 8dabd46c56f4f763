package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"routecast/config"
	"routecast/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewWeatherCache_Disabled(t *testing.T) {
	for _, redisCfg := range []*config.RedisConfig{nil, {Enabled: false, Addr: "localhost:6379"}} {
		cache, err := NewWeatherCache(Params{
			Lifecycle: fxtest.NewLifecycle(t),
			Config:    &config.Config{Redis: redisCfg},
			Logger:    discardLogger(),
		})

		require.NoError(t, err)
		assert.Nil(t, cache)
	}
}

func TestRedisWeatherCache_UnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewRedisWeatherCache(client, discardLogger())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		cache.Set(ctx, "weather:8.98:-79.52", entity.NeutralWeather(), time.Minute)
	})

	snapshot, ok := cache.Get(ctx, "weather:8.98:-79.52")
	assert.False(t, ok)
	assert.Nil(t, snapshot)
}
