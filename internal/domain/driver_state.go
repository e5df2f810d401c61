package domain

// DriverState holds the hours-of-service counters threaded through a
// single planning run. The 8-hour break cadence and the 11-hour daily
// driving limit are tracked as separate counters: DrivingSinceBreak
// resets at every break or rest, DrivingSinceRest only at a rest.
// A state value belongs to exactly one planning run and is never shared.
type DriverState struct {
	DrivingSinceBreak float64
	DrivingSinceRest  float64
	OnDutySinceRest   float64
	CycleHours        float64
}

// NewDriverState seeds a fresh state with the driver's accumulated
// cycle hours at trip start.
func NewDriverState(cycleHours float64) *DriverState {
	return &DriverState{CycleHours: cycleHours}
}

// RecordDriving advances every counter by the given driving hours.
func (s *DriverState) RecordDriving(hours float64) {
	s.DrivingSinceBreak += hours
	s.DrivingSinceRest += hours
	s.OnDutySinceRest += hours
	s.CycleHours += hours
}

// RecordOnDuty advances the duty-window counter for non-driving work
// such as breaks and fuel stops.
func (s *DriverState) RecordOnDuty(hours float64) {
	s.OnDutySinceRest += hours
}

// ResetAfterBreak clears the continuous-driving counter.
func (s *DriverState) ResetAfterBreak() {
	s.DrivingSinceBreak = 0
}

// ResetAfterRest clears all counters. The cycle reset models the
// simplified 34-hour restart.
func (s *DriverState) ResetAfterRest() {
	s.DrivingSinceBreak = 0
	s.DrivingSinceRest = 0
	s.OnDutySinceRest = 0
	s.CycleHours = 0
}
