package services

import (
	"math"
	"testing"
)

func TestGreatCircleDistance(t *testing.T) {
	// New York City to Los Angeles, roughly 2450 miles great-circle.
	got := GreatCircleDistance(40.7128, -74.0060, 34.0522, -118.2437)
	if math.Abs(got-2450) > 20 {
		t.Fatalf("NYC-LA distance = %.2f, want ~2450", got)
	}

	if d := GreatCircleDistance(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Fatalf("zero-length distance = %v, want 0", d)
	}

	// Symmetry.
	ab := GreatCircleDistance(41.8781, -87.6298, 39.7684, -86.1581)
	ba := GreatCircleDistance(39.7684, -86.1581, 41.8781, -87.6298)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}
