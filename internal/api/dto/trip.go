package dto

import "time"

type CreateTripRequest struct {
	CurrentLocation   string  `json:"current_location"`
	CurrentLat        float64 `json:"current_lat"`
	CurrentLng        float64 `json:"current_lng"`
	PickupLocation    string  `json:"pickup_location"`
	PickupLat         float64 `json:"pickup_lat"`
	PickupLng         float64 `json:"pickup_lng"`
	DropoffLocation   string  `json:"dropoff_location"`
	DropoffLat        float64 `json:"dropoff_lat"`
	DropoffLng        float64 `json:"dropoff_lng"`
	CurrentCycleHours float64 `json:"current_cycle_hours"`
	DriverName        string  `json:"driver_name"`
	CarrierName       string  `json:"carrier_name"`
	TruckNumber       string  `json:"truck_number"`
}

type SegmentResponse struct {
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	DistanceMiles float64 `json:"distance_miles"`
	DurationHours float64 `json:"duration_hours"`
	SegmentType   string  `json:"segment_type"`
	Order         int     `json:"order"`
}

type LogEntryResponse struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	DutyStatus string `json:"duty_status"`
	Location   string `json:"location"`
	Remarks    string `json:"remarks"`
}

type DailyLogResponse struct {
	Date              string             `json:"date"`
	Entries           []LogEntryResponse `json:"log_entries"`
	TotalMiles        float64            `json:"total_miles"`
	TotalHoursOffDuty float64            `json:"total_hours_off_duty"`
	TotalHoursSleeper float64            `json:"total_hours_sleeper"`
	TotalHoursDriving float64            `json:"total_hours_driving"`
	TotalHoursOnDuty  float64            `json:"total_hours_on_duty"`
}

type TripResponse struct {
	ID                string             `json:"id"`
	CurrentLocation   string             `json:"current_location"`
	CurrentLat        float64            `json:"current_lat"`
	CurrentLng        float64            `json:"current_lng"`
	PickupLocation    string             `json:"pickup_location"`
	PickupLat         float64            `json:"pickup_lat"`
	PickupLng         float64            `json:"pickup_lng"`
	DropoffLocation   string             `json:"dropoff_location"`
	DropoffLat        float64            `json:"dropoff_lat"`
	DropoffLng        float64            `json:"dropoff_lng"`
	CurrentCycleHours float64            `json:"current_cycle_hours"`
	DriverName        string             `json:"driver_name"`
	CarrierName       string             `json:"carrier_name"`
	TruckNumber       string             `json:"truck_number"`
	CreatedAt         time.Time          `json:"created_at"`
	Segments          []SegmentResponse  `json:"route_segments,omitempty"`
	DailyLogs         []DailyLogResponse `json:"daily_logs,omitempty"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
