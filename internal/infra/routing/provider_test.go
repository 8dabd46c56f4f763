package routing

import (
	"io"
	"log/slog"
	"testing"

	"routecast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoutingProvider(t *testing.T) {
	tests := []struct {
		name     string
		routing  config.RoutingConfig
		pmtiles  *config.PMTilesConfig
		expected string
		wantErr  bool
	}{
		{
			name:     "osrm",
			routing:  config.RoutingConfig{Provider: "osrm", OSRM: config.OSRMConfig{BaseURL: "http://osrm:5000", Profile: "driving"}},
			expected: "osrm",
		},
		{name: "haversine", routing: config.RoutingConfig{Provider: "haversine", DefaultSpeedKmh: 30}, expected: "haversine"},
		{name: "osrm without url", routing: config.RoutingConfig{Provider: "osrm"}, wantErr: true},
		{name: "pmtiles disabled", routing: config.RoutingConfig{Provider: "pmtiles"}, pmtiles: &config.PMTilesConfig{}, wantErr: true},
		{name: "unknown", routing: config.RoutingConfig{Provider: "valhalla"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routing := tt.routing
			provider, err := NewRoutingProvider(ProviderParams{
				Config: &config.Config{Routing: &routing, PMTiles: tt.pmtiles},
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, provider.Name())
		})
	}
}
