package ports

import (
	"context"
	"eld-trip-service/internal/domain"
)

// Authoritative route data for a single leg.
type RouteData struct {
	DistanceMiles float64
	DurationHours float64
	Geometry      string
}

// Contract for retrieving road distance and driving duration between two
// points. A non-nil error means the data is unavailable; callers decide
// whether to fall back to a heuristic.
type RouteLookup interface {
	Lookup(ctx context.Context, origin, destination domain.Point) (RouteData, error)
}
