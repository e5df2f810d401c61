package services

import (
	"context"
	"fmt"

	"eld-trip-service/internal/domain"
)

// PlanTrip plans both legs of a trip and the fixed pickup/dropoff
// activities between them. Driver-state counters persist across the
// pickup boundary: a trip is one continuous duty period, though the
// short-leg exemption is evaluated per leg.
func PlanTrip(ctx context.Context, trip *domain.Trip, estimator *LegEstimator) ([]domain.Segment, error) {
	state := domain.NewDriverState(trip.CurrentCycleHours)

	toPickup := estimator.Estimate(ctx, trip.Current, trip.Pickup)
	segments, err := PlanSegments(trip.CurrentLocation, trip.PickupLocation, toPickup.DistanceMiles, toPickup.DurationHours, state, 1)
	if err != nil {
		return nil, fmt.Errorf("plan trip: leg to pickup: %w", err)
	}

	segments = append(segments, domain.Segment{
		StartLocation: trip.PickupLocation,
		EndLocation:   trip.PickupLocation,
		DurationHours: pickupDurationHours,
		Kind:          domain.SegmentPickup,
		Order:         len(segments) + 1,
	})
	state.CycleHours += pickupDurationHours

	toDropoff := estimator.Estimate(ctx, trip.Pickup, trip.Dropoff)
	dropoffLeg, err := PlanSegments(trip.PickupLocation, trip.DropoffLocation, toDropoff.DistanceMiles, toDropoff.DurationHours, state, len(segments)+1)
	if err != nil {
		return nil, fmt.Errorf("plan trip: leg to dropoff: %w", err)
	}
	segments = append(segments, dropoffLeg...)

	segments = append(segments, domain.Segment{
		StartLocation: trip.DropoffLocation,
		EndLocation:   trip.DropoffLocation,
		DurationHours: dropoffDurationHours,
		Kind:          domain.SegmentDropoff,
		Order:         len(segments) + 1,
	})

	return segments, nil
}
