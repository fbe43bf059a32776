package algorithm

import "math"

// earth radius in meters
const earthRadius = 6371000

// EuclideanDistance computes the plain coordinate-space distance between two
// points. It is only meaningful as a comparison key for nearby locations and
// must not be read as kilometers.
func EuclideanDistance(loc1, loc2 Location) float64 {
	dLat := loc2.Latitude - loc1.Latitude
	dLng := loc2.Longitude - loc1.Longitude
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// HaversineDistance computes the spherical distance between two points in meters
func HaversineDistance(loc1, loc2 Location) int {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(earthRadius * c)
}

// PathDistanceMeters sums the spherical leg distances of an ordered path
func PathDistanceMeters(path []Location) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += HaversineDistance(path[i-1], path[i])
	}
	return total
}

// CenterPoint computes the centroid of a set of locations
func CenterPoint(locations []Location) Location {
	if len(locations) == 0 {
		return Location{}
	}
	if len(locations) == 1 {
		return locations[0]
	}

	var sumLat, sumLng float64
	for _, loc := range locations {
		sumLat += loc.Latitude
		sumLng += loc.Longitude
	}

	n := float64(len(locations))
	return Location{
		Latitude:  sumLat / n,
		Longitude: sumLng / n,
	}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
