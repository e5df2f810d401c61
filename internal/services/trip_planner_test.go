package services

import (
	"context"
	"testing"

	"eld-trip-service/internal/adapters/routing"
	"eld-trip-service/internal/domain"
)

func TestPlanTripDegenerateAllStopsColocated(t *testing.T) {
	here := domain.Point{Lat: 41.8781, Lng: -87.6298}
	trip := &domain.Trip{
		CurrentLocation: "Chicago, IL",
		Current:         here,
		PickupLocation:  "Chicago, IL",
		Pickup:          here,
		DropoffLocation: "Chicago, IL",
		Dropoff:         here,
	}

	// No lookup: both legs estimate to zero distance and duration.
	segments, err := PlanTrip(context.Background(), trip, &LegEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("expected exactly pickup and dropoff, got %d segments", len(segments))
	}

	pickup, dropoff := segments[0], segments[1]
	if pickup.Kind != domain.SegmentPickup || pickup.DurationHours != 1 || pickup.Order != 1 {
		t.Fatalf("pickup segment = %+v", pickup)
	}
	if dropoff.Kind != domain.SegmentDropoff || dropoff.DurationHours != 1 || dropoff.Order != 2 {
		t.Fatalf("dropoff segment = %+v", dropoff)
	}
}

func TestPlanTripTwoLegsWithCarriedState(t *testing.T) {
	current := domain.Point{Lat: 41.8781, Lng: -87.6298}
	pickup := domain.Point{Lat: 39.7684, Lng: -86.1581}
	dropoff := domain.Point{Lat: 38.2527, Lng: -85.7585}

	lookup := routing.NewMockRouteLookup([]routing.MockLeg{
		{From: current, To: pickup, Miles: 500, Hours: 9},
		{From: pickup, To: dropoff, Miles: 100, Hours: 2},
	})

	trip := &domain.Trip{
		CurrentLocation: "Chicago, IL",
		Current:         current,
		PickupLocation:  "Indianapolis, IN",
		Pickup:          pickup,
		DropoffLocation: "Louisville, KY",
		Dropoff:         dropoff,
	}

	segments, err := PlanTrip(context.Background(), trip, &LegEstimator{Lookup: lookup})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Leg 1 (9h > 8h, not exempt): driving, break, driving.
	// Then pickup, the exempt second leg, and dropoff.
	want := []domain.SegmentKind{
		domain.SegmentDriving,
		domain.SegmentBreak,
		domain.SegmentDriving,
		domain.SegmentPickup,
		domain.SegmentDriving,
		domain.SegmentDropoff,
	}
	kinds := kindSequence(segments)
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}

	assertOrdersSequential(t, segments, 1)

	// The short second leg is exempt and carries exact input values.
	leg2 := segments[4]
	if leg2.DistanceMiles != 100 || leg2.DurationHours != 2 {
		t.Fatalf("second leg = %.2f mi / %.2f h, want 100 / 2", leg2.DistanceMiles, leg2.DurationHours)
	}
	if leg2.StartLocation != "Indianapolis, IN" || leg2.EndLocation != "Louisville, KY" {
		t.Fatalf("second leg locations = %q -> %q", leg2.StartLocation, leg2.EndLocation)
	}

	// Pickup and dropoff sit at their stop with zero distance.
	if segments[3].StartLocation != "Indianapolis, IN" || segments[3].DistanceMiles != 0 {
		t.Fatalf("pickup segment = %+v", segments[3])
	}
	if segments[5].StartLocation != "Louisville, KY" || segments[5].DurationHours != 1 {
		t.Fatalf("dropoff segment = %+v", segments[5])
	}
}
