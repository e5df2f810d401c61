package domain

import "testing"

func TestSegmentKindDutyStatus(t *testing.T) {
	cases := []struct {
		kind SegmentKind
		want DutyStatus
	}{
		{SegmentDriving, StatusDriving},
		{SegmentBreak, StatusOffDuty},
		{SegmentRest, StatusSleeperBerth},
		{SegmentFuel, StatusOnDutyNotDriving},
		{SegmentPickup, StatusOnDutyNotDriving},
		{SegmentDropoff, StatusOnDutyNotDriving},
		{SegmentKind("unknown"), StatusOnDutyNotDriving},
	}

	for _, c := range cases {
		if got := c.kind.DutyStatus(); got != c.want {
			t.Errorf("%q.DutyStatus() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestSegmentKindTitle(t *testing.T) {
	if got := SegmentDriving.Title(); got != "Driving" {
		t.Errorf("Title() = %q, want Driving", got)
	}
	if got := SegmentKind("").Title(); got != "" {
		t.Errorf("Title() of empty kind = %q", got)
	}
}

func TestDriverStateTransitions(t *testing.T) {
	s := NewDriverState(30)
	if s.CycleHours != 30 {
		t.Fatalf("CycleHours = %.2f, want 30", s.CycleHours)
	}

	s.RecordDriving(5)
	s.RecordOnDuty(1)
	if s.DrivingSinceBreak != 5 || s.DrivingSinceRest != 5 {
		t.Fatalf("driving counters = %.2f / %.2f", s.DrivingSinceBreak, s.DrivingSinceRest)
	}
	if s.OnDutySinceRest != 6 {
		t.Fatalf("OnDutySinceRest = %.2f, want 6", s.OnDutySinceRest)
	}
	// Non-driving duty counts against the 14-hour window but not the cycle.
	if s.CycleHours != 35 {
		t.Fatalf("CycleHours = %.2f, want 35", s.CycleHours)
	}

	s.ResetAfterBreak()
	if s.DrivingSinceBreak != 0 {
		t.Fatalf("DrivingSinceBreak = %.2f after break", s.DrivingSinceBreak)
	}
	if s.DrivingSinceRest != 5 || s.OnDutySinceRest != 6 {
		t.Fatal("break reset cleared too much")
	}

	s.ResetAfterRest()
	if s.DrivingSinceBreak != 0 || s.DrivingSinceRest != 0 || s.OnDutySinceRest != 0 || s.CycleHours != 0 {
		t.Fatalf("rest reset incomplete: %+v", s)
	}
}
