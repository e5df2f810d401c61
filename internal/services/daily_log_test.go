package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"eld-trip-service/internal/domain"
)

func TestBuildDailyLogsSingleDay(t *testing.T) {
	segments := []domain.Segment{
		{StartLocation: "Chicago, IL", EndLocation: "En route to Indianapolis, IN", DistanceMiles: 444.44, DurationHours: 8, Kind: domain.SegmentDriving, Order: 1},
		{StartLocation: "Rest stop near Chicago, IL", EndLocation: "Rest stop near Chicago, IL", DurationHours: 0.5, Kind: domain.SegmentBreak, Order: 2},
		{StartLocation: "Chicago, IL", EndLocation: "Indianapolis, IN", DistanceMiles: 55.56, DurationHours: 1, Kind: domain.SegmentDriving, Order: 3},
		{StartLocation: "Indianapolis, IN", EndLocation: "Indianapolis, IN", DurationHours: 1, Kind: domain.SegmentPickup, Order: 4},
		{StartLocation: "Indianapolis, IN", EndLocation: "Louisville, KY", DistanceMiles: 100, DurationHours: 2, Kind: domain.SegmentDriving, Order: 5},
		{StartLocation: "Louisville, KY", EndLocation: "Louisville, KY", DurationHours: 1, Kind: domain.SegmentDropoff, Order: 6},
	}

	start := time.Date(2026, 1, 5, 11, 30, 0, 0, time.UTC)
	logs := BuildDailyLogs(segments, start)

	if len(logs) != 1 {
		t.Fatalf("expected 1 daily log, got %d", len(logs))
	}

	day := logs[0]
	if !day.Date.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v", day.Date)
	}

	// Clock walks from 06:00 regardless of the trip's creation time.
	first := day.Entries[0]
	if first.StartTime.Hour() != 6 || first.StartTime.Minute() != 0 {
		t.Fatalf("first entry starts at %v, want 06:00", first.StartTime)
	}

	if day.TotalHoursDriving != 11 {
		t.Fatalf("driving hours = %.2f, want 11", day.TotalHoursDriving)
	}
	if day.TotalHoursOffDuty != 0.5 {
		t.Fatalf("off-duty hours = %.2f, want 0.5", day.TotalHoursOffDuty)
	}
	if day.TotalHoursOnDuty != 2 {
		t.Fatalf("on-duty hours = %.2f, want 2", day.TotalHoursOnDuty)
	}
	if day.TotalHoursSleeper != 0 {
		t.Fatalf("sleeper hours = %.2f, want 0", day.TotalHoursSleeper)
	}
	if math.Abs(day.TotalMiles-600) > 0.01 {
		t.Fatalf("total miles = %.2f, want 600", day.TotalMiles)
	}

	assertTotalsMatchCoverage(t, day)
	assertEntriesContiguous(t, day)

	if got := first.Remarks; got != "Driving - Chicago, IL to En route to Indianapolis, IN" {
		t.Fatalf("remarks = %q", got)
	}
	if day.Entries[1].DutyStatus != domain.StatusOffDuty {
		t.Fatalf("break status = %q", day.Entries[1].DutyStatus)
	}
	if day.Entries[3].DutyStatus != domain.StatusOnDutyNotDriving {
		t.Fatalf("pickup status = %q", day.Entries[3].DutyStatus)
	}
}

func TestBuildDailyLogsRestRollsIntoNextLogDay(t *testing.T) {
	segments := []domain.Segment{
		{StartLocation: "A", EndLocation: "En route to B", DistanceMiles: 400, DurationHours: 8, Kind: domain.SegmentDriving, Order: 1},
		{StartLocation: "Rest area near A", EndLocation: "Rest area near A", DurationHours: 10, Kind: domain.SegmentRest, Order: 2},
		{StartLocation: "A", EndLocation: "B", DistanceMiles: 100, DurationHours: 2, Kind: domain.SegmentDriving, Order: 3},
	}

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	logs := BuildDailyLogs(segments, start)

	if len(logs) != 2 {
		t.Fatalf("expected 2 daily logs, got %d", len(logs))
	}

	day1, day2 := logs[0], logs[1]

	// The rest runs 14:00 to 24:00 and is attributed wholly to its
	// start date, not split at midnight.
	if day1.TotalHoursSleeper != 10 {
		t.Fatalf("day 1 sleeper hours = %.2f, want 10", day1.TotalHoursSleeper)
	}
	if day1.TotalHoursDriving != 8 {
		t.Fatalf("day 1 driving hours = %.2f, want 8", day1.TotalHoursDriving)
	}

	// The rest ends at midnight: before 06:00, so the clock snaps
	// forward to the start of the next log-sheet day.
	if !day2.Date.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day 2 date = %v", day2.Date)
	}
	next := day2.Entries[0]
	if next.StartTime.Hour() != 6 || next.StartTime.Minute() != 0 {
		t.Fatalf("day 2 first entry starts at %v, want 06:00", next.StartTime)
	}
	if day2.TotalHoursDriving != 2 {
		t.Fatalf("day 2 driving hours = %.2f, want 2", day2.TotalHoursDriving)
	}

	assertTotalsMatchCoverage(t, day1)
	assertTotalsMatchCoverage(t, day2)
	assertEntriesContiguous(t, day1)
}

func TestBuildDailyLogsFuelMapsToOnDuty(t *testing.T) {
	segments := []domain.Segment{
		{StartLocation: "Fuel stop near A", EndLocation: "Fuel stop near A", DurationHours: 0.5, Kind: domain.SegmentFuel, Order: 1},
	}

	logs := BuildDailyLogs(segments, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if len(logs) != 1 || len(logs[0].Entries) != 1 {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	entry := logs[0].Entries[0]
	if entry.DutyStatus != domain.StatusOnDutyNotDriving {
		t.Fatalf("fuel status = %q, want on_duty_not_driving", entry.DutyStatus)
	}
	if !strings.HasPrefix(entry.Remarks, "Fuel - ") {
		t.Fatalf("remarks = %q", entry.Remarks)
	}
}

// Totals across the four grid lines must equal the hours the day's
// entries actually cover.
func assertTotalsMatchCoverage(t *testing.T, day domain.DailyLog) {
	t.Helper()

	covered := 0.0
	for _, e := range day.Entries {
		covered += e.EndTime.Sub(e.StartTime).Hours()
	}

	total := day.TotalHoursOffDuty + day.TotalHoursSleeper + day.TotalHoursDriving + day.TotalHoursOnDuty
	if math.Abs(total-covered) > 0.01 {
		t.Fatalf("totals = %.4f hours, entries cover %.4f", total, covered)
	}
	if covered > 24+0.01 {
		t.Fatalf("day covers %.2f hours", covered)
	}
}

func assertEntriesContiguous(t *testing.T, day domain.DailyLog) {
	t.Helper()

	for i := 1; i < len(day.Entries); i++ {
		prev, cur := day.Entries[i-1], day.Entries[i]
		if cur.StartTime.Before(prev.StartTime) {
			t.Fatalf("entries out of order at %d", i)
		}
		if !prev.EndTime.Equal(cur.StartTime) {
			t.Fatalf("gap between entries %d and %d: %v != %v", i-1, i, prev.EndTime, cur.StartTime)
		}
	}
}
