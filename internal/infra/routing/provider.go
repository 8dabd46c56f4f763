// Package routing selects the configured base-route engine.
package routing

import (
	"log/slog"

	"routecast/config"
	"routecast/internal/domain/constants"
	"routecast/internal/domain/service"
	"routecast/internal/infra/routing/haversine"
	"routecast/internal/infra/routing/osrm"
	"routecast/internal/infra/routing/pmtiles"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the routing provider.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRoutingProvider builds the engine named by routing.provider.
func NewRoutingProvider(params ProviderParams) (service.RoutingProvider, error) {
	cfg := params.Config

	var provider service.RoutingProvider
	switch cfg.Routing.Provider {
	case constants.RoutingProviderOSRM:
		if cfg.Routing.OSRM.BaseURL == "" {
			return nil, errors.New("routing.osrm.baseUrl is required for the osrm provider")
		}
		provider = osrm.New(cfg, params.Logger)

	case constants.RoutingProviderPMTiles:
		if cfg.PMTiles == nil || !cfg.PMTiles.Enabled {
			return nil, errors.New("pmtiles must be enabled for the pmtiles provider")
		}
		tiles, err := pmtiles.New(cfg, params.Logger)
		if err != nil {
			return nil, err
		}
		provider = tiles

	case constants.RoutingProviderHaversine:
		provider = haversine.New(cfg.Routing.DefaultSpeedKmh)

	default:
		return nil, errors.Errorf("unknown routing provider: %s", cfg.Routing.Provider)
	}

	params.Logger.Info("Routing provider selected", slog.String("provider", provider.Name()))

	return provider, nil
}

// Module provides the routing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRoutingProvider),
)
