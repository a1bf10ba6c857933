package engine

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// CaptureRadiusKm is how close the user must be to capture a monster.
	CaptureRadiusKm = 0.05

	// HotspotRadiusKm is the radius within which a report folds into an
	// existing hotspot instead of creating a new one.
	HotspotRadiusKm = 0.1
)

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers (haversine).
func DistanceKm(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsMonsterNearby reports whether the user is within capture range of a
// monster. A nil user location means the position has not resolved yet,
// which is never "nearby".
func IsMonsterNearby(monster Coordinates, user *Coordinates) bool {
	if user == nil {
		return false
	}
	return DistanceKm(monster, *user) <= CaptureRadiusKm
}
