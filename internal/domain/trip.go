package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the planning aggregate: the three stops of a haul, the
// driver's starting cycle hours, and identifying labels. Segments and
// DailyLogs are populated by a planning run before the trip is handed
// to the persistence layer.
type Trip struct {
	ID                uuid.UUID
	CurrentLocation   string
	Current           Point
	PickupLocation    string
	Pickup            Point
	DropoffLocation   string
	Dropoff           Point
	CurrentCycleHours float64
	DriverName        string
	CarrierName       string
	TruckNumber       string
	CreatedAt         time.Time

	Segments  []Segment
	DailyLogs []DailyLog
}
