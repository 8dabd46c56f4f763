// Package geo holds the great-circle helpers every proximity check goes through.
package geo

import (
	"math"

	"routecast/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the haversine distance between two points in kilometers.
func Distance(a, b entity.GeoPoint) float64 {
	return haversine(a.Lat, a.Lng, b.Lat, b.Lng)
}

// PointDistance is Distance for orb points ([lng, lat]).
func PointDistance(a, b orb.Point) float64 {
	return haversine(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// Within reports whether two points are at most radiusKm apart.
func Within(a, b entity.GeoPoint, radiusKm float64) bool {
	return Distance(a, b) <= radiusKm
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
