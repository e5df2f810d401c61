package ports

import (
	"context"
	"eld-trip-service/internal/domain"
)

// Persistent cache of coordinate pair -> route data, keyed by exact
// origin/destination coordinates.
type RouteCache interface {
	// Return the cached route data and whether the pair was present.
	Get(ctx context.Context, origin, destination domain.Point) (RouteData, bool, error)
	// Store route data for a pair, replacing any previous value.
	Put(ctx context.Context, origin, destination domain.Point, data RouteData) error
}
