package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"eld-trip-service/internal/api/dto"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
	"eld-trip-service/internal/services"

	"github.com/google/uuid"
)

const clockLayout = "15:04"

// TripHandler exposes trip planning and retrieval endpoints.
type TripHandler struct {
	Repo   ports.TripRepository
	Lookup ports.RouteLookup
}

// Trips dispatches the /trips collection endpoint.
func (h *TripHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create plans a new trip and persists its segments and daily logs.
func (h *TripHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if msg := validateCreateTrip(&req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	svcReq := services.CreateTripRequest{
		CurrentLocation:   strings.TrimSpace(req.CurrentLocation),
		Current:           domain.Point{Lat: req.CurrentLat, Lng: req.CurrentLng},
		PickupLocation:    strings.TrimSpace(req.PickupLocation),
		Pickup:            domain.Point{Lat: req.PickupLat, Lng: req.PickupLng},
		DropoffLocation:   strings.TrimSpace(req.DropoffLocation),
		Dropoff:           domain.Point{Lat: req.DropoffLat, Lng: req.DropoffLng},
		CurrentCycleHours: req.CurrentCycleHours,
		DriverName:        strings.TrimSpace(req.DriverName),
		CarrierName:       strings.TrimSpace(req.CarrierName),
		TruckNumber:       strings.TrimSpace(req.TruckNumber),
	}

	trip, err := services.CreateTrip(r.Context(), svcReq, h.Repo, h.Lookup)
	if err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, tripResponse(trip, true))
}

func (h *TripHandler) list(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripResponse(t, false))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get serves /trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rawID := strings.TrimPrefix(r.URL.Path, "/trips/")
	if rawID == "" || strings.Contains(rawID, "/") {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.Repo.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("get trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(trip, true))
}

func validateCreateTrip(req *dto.CreateTripRequest) string {
	if strings.TrimSpace(req.CurrentLocation) == "" {
		return "current_location is required"
	}
	if strings.TrimSpace(req.PickupLocation) == "" {
		return "pickup_location is required"
	}
	if strings.TrimSpace(req.DropoffLocation) == "" {
		return "dropoff_location is required"
	}
	if req.CurrentCycleHours < 0 || req.CurrentCycleHours > 70 {
		return "current_cycle_hours must be between 0 and 70"
	}
	if strings.TrimSpace(req.DriverName) == "" {
		return "driver_name is required"
	}
	return ""
}

func tripResponse(t *domain.Trip, includePlan bool) dto.TripResponse {
	res := dto.TripResponse{
		ID:                t.ID.String(),
		CurrentLocation:   t.CurrentLocation,
		CurrentLat:        t.Current.Lat,
		CurrentLng:        t.Current.Lng,
		PickupLocation:    t.PickupLocation,
		PickupLat:         t.Pickup.Lat,
		PickupLng:         t.Pickup.Lng,
		DropoffLocation:   t.DropoffLocation,
		DropoffLat:        t.Dropoff.Lat,
		DropoffLng:        t.Dropoff.Lng,
		CurrentCycleHours: t.CurrentCycleHours,
		DriverName:        t.DriverName,
		CarrierName:       t.CarrierName,
		TruckNumber:       t.TruckNumber,
		CreatedAt:         t.CreatedAt,
	}

	if !includePlan {
		return res
	}

	res.Segments = make([]dto.SegmentResponse, 0, len(t.Segments))
	for _, seg := range t.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			StartLocation: seg.StartLocation,
			EndLocation:   seg.EndLocation,
			DistanceMiles: seg.DistanceMiles,
			DurationHours: seg.DurationHours,
			SegmentType:   string(seg.Kind),
			Order:         seg.Order,
		})
	}

	res.DailyLogs = make([]dto.DailyLogResponse, 0, len(t.DailyLogs))
	for _, dl := range t.DailyLogs {
		entries := make([]dto.LogEntryResponse, 0, len(dl.Entries))
		for _, e := range dl.Entries {
			entries = append(entries, dto.LogEntryResponse{
				StartTime:  e.StartTime.Format(clockLayout),
				EndTime:    e.EndTime.Format(clockLayout),
				DutyStatus: string(e.DutyStatus),
				Location:   e.Location,
				Remarks:    e.Remarks,
			})
		}

		res.DailyLogs = append(res.DailyLogs, dto.DailyLogResponse{
			Date:              dl.Date.Format(time.DateOnly),
			Entries:           entries,
			TotalMiles:        dl.TotalMiles,
			TotalHoursOffDuty: dl.TotalHoursOffDuty,
			TotalHoursSleeper: dl.TotalHoursSleeper,
			TotalHoursDriving: dl.TotalHoursDriving,
			TotalHoursOnDuty:  dl.TotalHoursOnDuty,
		})
	}

	return res
}
