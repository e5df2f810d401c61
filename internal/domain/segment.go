package domain

import "strings"

// SegmentKind identifies the planned activity a segment represents.
type SegmentKind string

const (
	SegmentDriving SegmentKind = "driving"
	SegmentRest    SegmentKind = "rest"
	SegmentFuel    SegmentKind = "fuel"
	SegmentPickup  SegmentKind = "pickup"
	SegmentDropoff SegmentKind = "dropoff"
	SegmentBreak   SegmentKind = "break"
)

// DutyStatus maps a segment kind to the duty status recorded on the
// driver's daily log. Unknown kinds default to on-duty-not-driving.
func (k SegmentKind) DutyStatus() DutyStatus {
	switch k {
	case SegmentDriving:
		return StatusDriving
	case SegmentBreak:
		return StatusOffDuty
	case SegmentRest:
		return StatusSleeperBerth
	default:
		return StatusOnDutyNotDriving
	}
}

// Title returns the kind capitalized for use in log remarks.
func (k SegmentKind) Title() string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Segment is an atomic planned activity within a trip. Segments are
// ordered by Order, which is strictly increasing across a whole trip.
// Non-driving segments (break, rest, fuel, pickup, dropoff) carry zero
// distance.
type Segment struct {
	StartLocation string
	EndLocation   string
	DistanceMiles float64
	DurationHours float64
	Kind          SegmentKind
	Order         int
}
