package routing

import (
	"context"
	"fmt"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Point
	Miles    float64
	Hours    float64
}

// MockRouteLookup serves fixed route data for known point pairs.
type MockRouteLookup struct {
	m   map[string]ports.RouteData
	Err error
}

func NewMockRouteLookup(legs []MockLeg) *MockRouteLookup {
	m := make(map[string]ports.RouteData, len(legs))
	for _, l := range legs {
		m[pairKey(l.From, l.To)] = ports.RouteData{DistanceMiles: l.Miles, DurationHours: l.Hours}
	}
	return &MockRouteLookup{m: m}
}

func (p *MockRouteLookup) Lookup(ctx context.Context, origin, destination domain.Point) (ports.RouteData, error) {
	if p.Err != nil {
		return ports.RouteData{}, p.Err
	}

	r, ok := p.m[pairKey(origin, destination)]
	if !ok {
		return ports.RouteData{}, fmt.Errorf("missing leg %v -> %v", origin, destination)
	}

	return r, nil
}

func pairKey(origin, destination domain.Point) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}
