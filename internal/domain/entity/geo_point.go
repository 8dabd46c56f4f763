// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// NewGeoPointFromOrb converts an orb point ([lng, lat]) into a GeoPoint.
func NewGeoPointFromOrb(p orb.Point) GeoPoint {
	return GeoPoint{Lat: p.Lat(), Lng: p.Lon()}
}

// Point returns the orb representation of the coordinate.
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// IsValid checks that both components are finite and within range.
func (p GeoPoint) IsValid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
