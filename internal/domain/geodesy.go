package domain

import "math"

// EarthRadiusMeters is the IUGG mean earth radius.
const EarthRadiusMeters = 6371008.8

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// HaversineMeters returns the great-circle distance between a and b.
// Every trigonometric call takes radians, latitudes included.
func HaversineMeters(a, b Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// GeoBearing returns the initial great-circle bearing from a to b in degrees
// clockwise from North, in [0, 360).
func GeoBearing(a, b Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLng := radians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	bearing := math.Mod(degrees(math.Atan2(y, x))+360, 360)
	return bearing
}
