package geo

import "math"

// kmPerDegree approximates one degree of latitude in kilometers.
const kmPerDegree = 111.0

// DistanceKm returns the planar distance between two coordinates in km,
// treating degree space as flat. At city scale the curvature error is far
// below the jitter used to place intersections, so a full haversine is not
// worth the cost in the O(N^2) edge pass.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	latDiff := lat1 - lat2
	lngDiff := lng1 - lng2
	return math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * kmPerDegree
}
