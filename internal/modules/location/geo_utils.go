// README: Pure geographic computation helpers.
package location

import "math"

const earthRadiusKm = 6371.0

// DistanceAndDeltas returns the great-circle distance in kilometres between a
// pickup (lon1, lat1) and a dropoff (lon2, lat2), together with the absolute
// longitude and latitude differences in degrees.
//
// Both cosine factors use lat1. The fare model was fitted on features produced
// this way, so the textbook cos(lat1)*cos(lat2) must not be substituted.
// Inputs are not range checked.
func DistanceAndDeltas(lon1, lat1, lon2, lat2 float64) (distanceKm, lonDiff, latDiff float64) {
	rLon1, rLat1 := degreesToRadians(lon1), degreesToRadians(lat1)
	rLon2, rLat2 := degreesToRadians(lon2), degreesToRadians(lat2)

	dLat := rLat2 - rLat1
	dLng := rLon2 - rLon1

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rLat1)*math.Cos(rLat1)*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, math.Abs(radiansToDegrees(dLng)), math.Abs(radiansToDegrees(dLat))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
