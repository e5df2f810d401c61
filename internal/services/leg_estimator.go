package services

import (
	"context"
	"log"
	"math"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
)

const (
	shortHaulThresholdMiles = 50.0
	shortHaulSpeedMPH       = 45.0
	lineHaulSpeedMPH        = 60.0
)

// LegEstimator produces a (distance, duration) pair for a leg. It asks
// the external route lookup first and falls back to a great-circle
// estimate on any failure, so it always returns a usable Leg.
type LegEstimator struct {
	// Lookup may be nil, in which case every leg uses the heuristic.
	Lookup ports.RouteLookup
}

// Estimate never fails: lookup errors are logged and absorbed here,
// never surfaced past the estimator boundary.
func (e *LegEstimator) Estimate(ctx context.Context, origin, destination domain.Point) domain.Leg {
	if e.Lookup != nil {
		data, err := e.Lookup.Lookup(ctx, origin, destination)
		if err == nil {
			// Provider data is trusted as-is, no rounding.
			return domain.Leg{
				Origin:        origin,
				Destination:   destination,
				DistanceMiles: data.DistanceMiles,
				DurationHours: data.DurationHours,
				Geometry:      data.Geometry,
				Source:        domain.LegSourceProvider,
			}
		}
		log.Printf("route lookup unavailable, using heuristic: %v", err)
	}

	distance := GreatCircleDistance(origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	speed := lineHaulSpeedMPH
	if distance < shortHaulThresholdMiles {
		speed = shortHaulSpeedMPH
	}

	return domain.Leg{
		Origin:        origin,
		Destination:   destination,
		DistanceMiles: round2(distance),
		DurationHours: round2(distance / speed),
		Source:        domain.LegSourceHeuristic,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
