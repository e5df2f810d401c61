package ports

import (
	"context"
	"errors"

	"eld-trip-service/internal/domain"

	"github.com/google/uuid"
)

var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for storing and retrieving planned trips.
type TripRepository interface {
	// Persist a trip with its segments and daily logs atomically.
	// A failure must leave no partial trip behind.
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	// Retrieve a trip aggregate by id, or ErrTripNotFound.
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	// List trip headers, newest first, without segments or logs.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
}
