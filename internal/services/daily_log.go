package services

import (
	"fmt"
	"time"

	"eld-trip-service/internal/domain"
)

// Log-sheet days start at 06:00, not midnight.
const logDayStartHour = 6

// BuildDailyLogs walks the ordered segment sequence with a synthetic
// clock starting at 06:00 on the trip's start date and partitions it
// into per-day duty-status intervals and hour totals. An interval that
// straddles the day boundary is attributed wholly to its start date.
func BuildDailyLogs(segments []domain.Segment, tripStart time.Time) []domain.DailyLog {
	clock := time.Date(tripStart.Year(), tripStart.Month(), tripStart.Day(), logDayStartHour, 0, 0, 0, tripStart.Location())

	var logs []domain.DailyLog
	for _, seg := range segments {
		date := midnight(clock)
		if len(logs) == 0 || !logs[len(logs)-1].Date.Equal(date) {
			logs = append(logs, domain.DailyLog{Date: date})
		}
		bucket := &logs[len(logs)-1]

		end := clock.Add(time.Duration(seg.DurationHours * float64(time.Hour)))
		status := seg.Kind.DutyStatus()

		bucket.Entries = append(bucket.Entries, domain.LogEntry{
			StartTime:  clock,
			EndTime:    end,
			DutyStatus: status,
			Location:   seg.StartLocation,
			Remarks:    fmt.Sprintf("%s - %s to %s", seg.Kind.Title(), seg.StartLocation, seg.EndLocation),
		})

		bucket.TotalMiles += seg.DistanceMiles
		switch status {
		case domain.StatusOffDuty:
			bucket.TotalHoursOffDuty += seg.DurationHours
		case domain.StatusSleeperBerth:
			bucket.TotalHoursSleeper += seg.DurationHours
		case domain.StatusDriving:
			bucket.TotalHoursDriving += seg.DurationHours
		default:
			bucket.TotalHoursOnDuty += seg.DurationHours
		}

		clock = end
		// Crossing into a new date before 06:00 rolls the clock forward
		// to the start of the next log-sheet day.
		if !midnight(clock).Equal(date) && clock.Hour() < logDayStartHour {
			clock = time.Date(clock.Year(), clock.Month(), clock.Day(), logDayStartHour, 0, 0, 0, clock.Location())
		}
	}

	return logs
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
