package domain

import "math"

const (
	earthRadiusKm = 6371.0
	// AverageSpeedKmh is the assumed cruising speed used for ETA estimates.
	AverageSpeedKmh = 50.0
)

// DistanceKm returns the great-circle distance between a and b (haversine).
func DistanceKm(a, b Location) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// HoursLeft estimates whole hours of travel from current to dest.
func HoursLeft(current, dest Location) int {
	return int(math.Round(DistanceKm(current, dest) / AverageSpeedKmh))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
