package entity

import (
	"github.com/paulmach/orb"
)

// RoutePolyline is one route returned by the routing engine.
// Path holds at least two points in [lng, lat] order.
type RoutePolyline struct {
	Path         orb.LineString
	Distance     float64 // meters
	BaseDuration float64 // seconds
}

// Coordinates returns the path as [lng, lat] pairs.
func (r *RoutePolyline) Coordinates() [][]float64 {
	coords := make([][]float64, len(r.Path))
	for i, p := range r.Path {
		coords[i] = []float64{p.Lon(), p.Lat()}
	}

	return coords
}

// PathFromCoordinates builds a path from [lng, lat] pairs, skipping malformed entries.
func PathFromCoordinates(coords [][]float64) orb.LineString {
	path := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		path = append(path, orb.Point{c[0], c[1]})
	}

	return path
}
