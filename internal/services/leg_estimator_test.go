package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
)

type stubLookup struct {
	data ports.RouteData
	err  error
}

func (s *stubLookup) Lookup(ctx context.Context, origin, destination domain.Point) (ports.RouteData, error) {
	return s.data, s.err
}

func TestLegEstimatorProviderDataTrustedAsIs(t *testing.T) {
	lookup := &stubLookup{data: ports.RouteData{DistanceMiles: 123.456789, DurationHours: 2.345678, Geometry: "abc"}}
	e := &LegEstimator{Lookup: lookup}

	leg := e.Estimate(context.Background(), domain.Point{Lat: 1, Lng: 2}, domain.Point{Lat: 3, Lng: 4})

	if leg.Source != domain.LegSourceProvider {
		t.Fatalf("source = %q, want provider", leg.Source)
	}
	// No rounding on the authoritative path.
	if leg.DistanceMiles != 123.456789 || leg.DurationHours != 2.345678 {
		t.Fatalf("provider data modified: %+v", leg)
	}
	if leg.Geometry != "abc" {
		t.Fatalf("geometry = %q, want abc", leg.Geometry)
	}
}

func TestLegEstimatorFallbackOnLookupError(t *testing.T) {
	lookup := &stubLookup{err: errors.New("boom")}
	e := &LegEstimator{Lookup: lookup}

	// One degree of latitude, about 69.09 great-circle miles.
	leg := e.Estimate(context.Background(), domain.Point{Lat: 0, Lng: 0}, domain.Point{Lat: 1, Lng: 0})

	if leg.Source != domain.LegSourceHeuristic {
		t.Fatalf("source = %q, want heuristic", leg.Source)
	}
	if math.Abs(leg.DistanceMiles-69.09) > 0.01 {
		t.Fatalf("distance = %.4f, want ~69.09", leg.DistanceMiles)
	}
	// 69.09 miles >= 50, so line-haul speed of 60 mph applies.
	if math.Abs(leg.DurationHours-1.15) > 0.01 {
		t.Fatalf("duration = %.4f, want ~1.15", leg.DurationHours)
	}
}

func TestLegEstimatorFallbackShortHaulSpeed(t *testing.T) {
	e := &LegEstimator{} // no lookup configured

	// Half a degree of latitude, about 34.55 miles: under the 50-mile
	// threshold, so 45 mph applies.
	leg := e.Estimate(context.Background(), domain.Point{Lat: 0, Lng: 0}, domain.Point{Lat: 0.5, Lng: 0})

	if leg.Source != domain.LegSourceHeuristic {
		t.Fatalf("source = %q, want heuristic", leg.Source)
	}
	if math.Abs(leg.DistanceMiles-34.55) > 0.01 {
		t.Fatalf("distance = %.4f, want ~34.55", leg.DistanceMiles)
	}
	if math.Abs(leg.DurationHours-0.77) > 0.01 {
		t.Fatalf("duration = %.4f, want ~0.77", leg.DurationHours)
	}

	// Rounded to two decimals in the fallback path.
	if leg.DistanceMiles != round2(leg.DistanceMiles) || leg.DurationHours != round2(leg.DurationHours) {
		t.Fatalf("fallback values not rounded: %+v", leg)
	}
}
