// Package haversine draws straight-line routes for development without a routing engine.
package haversine

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/geo"

	"github.com/paulmach/orb"
)

const providerName = "haversine"

// Provider answers every request with one straight segment.
type Provider struct {
	speedKmh float64
}

// New creates a provider driving at speedKmh.
func New(speedKmh float64) *Provider {
	if speedKmh <= 0 {
		speedKmh = 30
	}

	return &Provider{speedKmh: speedKmh}
}

func (p *Provider) Name() string {
	return providerName
}

func (p *Provider) Routes(_ context.Context, start, end entity.GeoPoint) ([]*entity.RoutePolyline, error) {
	km := geo.Distance(start, end)

	return []*entity.RoutePolyline{{
		Path:         orb.LineString{start.Point(), end.Point()},
		Distance:     km * 1000,
		BaseDuration: km / p.speedKmh * 3600,
	}}, nil
}
