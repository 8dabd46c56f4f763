package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Persistence)
	assert.True(t, cfg.Persistence.AutoMigrate)
	assert.Equal(t, 200*time.Millisecond, cfg.Persistence.SlowQueryThreshold)

	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "osrm", cfg.Routing.Provider)
	assert.Equal(t, 10*time.Second, cfg.Routing.RequestTimeout)
	assert.Equal(t, "driving", cfg.Routing.OSRM.Profile)
	assert.Equal(t, 5, cfg.Routing.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Routing.Breaker.ResetTimeout)

	require.NotNil(t, cfg.Weather)
	assert.Equal(t, "es", cfg.Weather.Lang)
	assert.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)

	require.NotNil(t, cfg.Incidents)
	assert.Equal(t, 60, cfg.Incidents.DefaultExpiryMinutes)
	assert.Equal(t, 30, cfg.Incidents.ConfirmExtensionMinutes)
	assert.Equal(t, 0.3, cfg.Incidents.RouteThresholdKm)

	require.NotNil(t, cfg.Model)
	assert.Equal(t, "route_predictor", cfg.Model.ArtifactName)
	assert.Equal(t, "file:///tmp/routecast-models", cfg.Model.MirrorURL)

	require.NotNil(t, cfg.Training)
	assert.Equal(t, 10, cfg.Training.MinTrips)
	assert.Equal(t, 100, cfg.Training.Estimators)
	assert.Equal(t, 5, cfg.Training.MaxDepth)
	assert.Equal(t, 0.1, cfg.Training.LearningRate)
	assert.Equal(t, uint64(42), cfg.Training.Seed)

	require.NotNil(t, cfg.PubSub)
	require.NotNil(t, cfg.PMTiles)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Routing:  &RoutingConfig{Provider: "haversine", Breaker: BreakerConfig{MaxFailures: 2}},
		Training: &TrainingConfig{MinTrips: 20, Seed: 7},
		Metrics:  &MetricsConfig{Enabled: false, Path: "/prom"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "haversine", cfg.Routing.Provider)
	assert.Equal(t, 2, cfg.Routing.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Routing.Breaker.ResetTimeout)
	assert.Equal(t, 20, cfg.Training.MinTrips)
	assert.Equal(t, uint64(7), cfg.Training.Seed)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/prom", cfg.Metrics.Path)
}
