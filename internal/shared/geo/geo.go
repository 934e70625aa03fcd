package geo

import (
	"math"

	"github.com/Karnakarj/areahunt/internal/shared/model"
)

const earthRadiusKm = 6371.0

// PlanarDeg returns the flat-earth distance between two points in raw
// lat/lng degrees (sqrt of squared degree deltas). Cheap and good enough
// for telling jitter from movement over city-block distances; not
// geodesically exact.
func PlanarDeg(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// PathDistanceM sums the haversine length of an ordered path in meters.
func PathDistanceM(points []model.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += HaversineKm(points[i-1].Lat, points[i-1].Lng, points[i].Lat, points[i].Lng) * 1000
	}
	return total
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
