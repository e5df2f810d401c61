package services

import (
	"context"
	"fmt"
	"time"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"

	"github.com/google/uuid"
)

type CreateTripRequest struct {
	CurrentLocation   string
	Current           domain.Point
	PickupLocation    string
	Pickup            domain.Point
	DropoffLocation   string
	Dropoff           domain.Point
	CurrentCycleHours float64
	DriverName        string
	CarrierName       string
	TruckNumber       string
}

// CreateTrip plans a trip end to end and persists the whole aggregate.
// Planning itself cannot leave partial state; the repository persists
// trip, segments, and logs in one transaction so a storage failure
// discards the trip entirely.
func CreateTrip(ctx context.Context, req CreateTripRequest, repo ports.TripRepository, lookup ports.RouteLookup) (*domain.Trip, error) {
	trip := &domain.Trip{
		ID:                uuid.New(),
		CurrentLocation:   req.CurrentLocation,
		Current:           req.Current,
		PickupLocation:    req.PickupLocation,
		Pickup:            req.Pickup,
		DropoffLocation:   req.DropoffLocation,
		Dropoff:           req.Dropoff,
		CurrentCycleHours: req.CurrentCycleHours,
		DriverName:        req.DriverName,
		CarrierName:       req.CarrierName,
		TruckNumber:       req.TruckNumber,
		CreatedAt:         time.Now(),
	}

	estimator := &LegEstimator{Lookup: lookup}
	segments, err := PlanTrip(ctx, trip, estimator)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	trip.Segments = segments
	trip.DailyLogs = BuildDailyLogs(segments, trip.CreatedAt)

	if err := repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: persist: %w", err)
	}

	return trip, nil
}
