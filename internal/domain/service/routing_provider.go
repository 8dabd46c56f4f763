package service

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"
)

// ErrNoRoute is returned when the routing engine finds no path between two points.
var ErrNoRoute = errors.New("no route found")

// RoutingProvider returns drivable routes between two points.
type RoutingProvider interface {
	// Name identifies the backing engine, e.g. "osrm".
	Name() string

	// Routes returns the main route first followed by any alternatives.
	// It returns ErrNoRoute when the engine answers but has no route.
	Routes(ctx context.Context, start, end entity.GeoPoint) ([]*entity.RoutePolyline, error)
}
