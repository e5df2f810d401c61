package domain

import "time"

// DutyStatus is one of the four ELD grid lines.
type DutyStatus string

const (
	StatusOffDuty          DutyStatus = "off_duty"
	StatusSleeperBerth     DutyStatus = "sleeper_berth"
	StatusDriving          DutyStatus = "driving"
	StatusOnDutyNotDriving DutyStatus = "on_duty_not_driving"
)

// LogEntry is one duty-status interval on a daily log sheet.
// Within a daily log, entries are in start-time order and contiguous
// except across the 06:00 day boundary.
type LogEntry struct {
	StartTime  time.Time
	EndTime    time.Time
	DutyStatus DutyStatus
	Location   string
	Remarks    string
}

// DailyLog is one calendar day of duty-status intervals with the
// accumulated hour totals for each grid line and the miles driven.
type DailyLog struct {
	Date              time.Time
	Entries           []LogEntry
	TotalMiles        float64
	TotalHoursOffDuty float64
	TotalHoursSleeper float64
	TotalHoursDriving float64
	TotalHoursOnDuty  float64
}
