package services

import "github.com/golang/geo/s2"

const earthRadiusMiles = 3958.756

// GreatCircleDistance returns the shortest-path distance in miles
// between two points given in decimal degrees.
func GreatCircleDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * earthRadiusMiles
}
