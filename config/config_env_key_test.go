package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "routecast",
			},
		},
		"routing": map[string]any{
			"osrm": map[string]any{
				"baseUrl": "",
			},
		},
		"weather": map[string]any{
			"cacheTtl": "10m",
		},
		"incidents": map[string]any{
			"routeThresholdKm": 0.3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ROUTING_OSRM_BASEURL", want: "routing.osrm.baseUrl"},
		{envKey: "WEATHER_CACHETTL", want: "weather.cacheTtl"},
		{envKey: "INCIDENTS_ROUTETHRESHOLDKM", want: "incidents.routeThresholdKm"},
		{envKey: "TRAINING__MIN_TRIPS", want: "training.min.trips"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlDoc := `
http:
  port: 8000
routing:
  provider: osrm
  osrm:
    baseUrl: https://router.project-osrm.org
weather:
  cacheTtl: 10m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routecast-test.yaml"), []byte(yamlDoc), 0o600))
	t.Chdir(dir)
	t.Setenv("ROUTING_OSRM_BASEURL", "http://osrm:5000")
	t.Setenv("WEATHER_CACHETTL", "90s")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("routecast-test")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "osrm", cfg.Routing.Provider)
	assert.Equal(t, "http://osrm:5000", cfg.Routing.OSRM.BaseURL)
	require.NotNil(t, cfg.Weather)
	assert.Equal(t, 90*time.Second, cfg.Weather.CacheTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	assert.ErrorContains(t, err, "absent.yaml not found")
}
