package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// SampleVertices returns every step-th vertex of path starting at index 0.
// A step below 1 returns the whole path.
func SampleVertices(path orb.LineString, step int) []orb.Point {
	if step <= 1 {
		return path
	}

	sampled := make([]orb.Point, 0, len(path)/step+1)
	for i := 0; i < len(path); i += step {
		sampled = append(sampled, path[i])
	}

	return sampled
}

// NearAnyVertex reports whether target lies within thresholdKm of any sampled vertex.
// The scan stops at the first vertex in range.
func NearAnyVertex(target orb.Point, sampled []orb.Point, thresholdKm float64) bool {
	for _, vertex := range sampled {
		if PointDistance(target, vertex) <= thresholdKm {
			return true
		}
	}

	return false
}

// PathLength returns the total length of path in kilometers.
func PathLength(path orb.LineString) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += PointDistance(path[i-1], path[i])
	}

	return total
}

// Bounds returns the bounding box covering all points, padded by at least padKm on each side.
func Bounds(points []orb.Point, padKm float64) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}

	bound := orb.MultiPoint(points).Bound()

	// One degree of latitude is roughly 111.2 km; a degree of longitude shrinks with cos(lat).
	padLat := padKm / 111.0
	maxAbsLat := math.Min(math.Max(math.Abs(bound.Min.Lat()), math.Abs(bound.Max.Lat()))+padLat, 89.0)
	padLng := padLat / math.Cos(maxAbsLat*math.Pi/180)

	return orb.Bound{
		Min: orb.Point{bound.Min.Lon() - padLng, bound.Min.Lat() - padLat},
		Max: orb.Point{bound.Max.Lon() + padLng, bound.Max.Lat() + padLat},
	}
}

// PlanarBound reports whether b stays clear of the antimeridian and the poles.
// Outside that range a padded lon/lat box can miss points that are within its padding.
func PlanarBound(b orb.Bound) bool {
	return b.Min.Lon() > -180 && b.Max.Lon() < 180 &&
		b.Min.Lat() > -89 && b.Max.Lat() < 89
}
