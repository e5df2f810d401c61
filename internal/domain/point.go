package domain

// Immutable geographic point (latitude, longitude in decimal degrees).
type Point struct {
	Lat float64
	Lng float64
}
