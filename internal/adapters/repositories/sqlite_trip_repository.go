package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SQLite-backed implementation of the TripRepository port.
type SqliteTripRepository struct{ DB *sql.DB }

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{DB: db}
}

// Persist a trip with its segments, daily logs, and log entries in one
// transaction. Any failure rolls the whole trip back.
func (s *SqliteTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.Create")(&err)

	if s.DB == nil {
		return errors.New("sqlite trip repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertTrip := `
	INSERT INTO trips (
		id,
		current_location, current_lat, current_lng,
		pickup_location, pickup_lat, pickup_lng,
		dropoff_location, dropoff_lat, dropoff_lng,
		current_cycle_hours,
		driver_name, carrier_name, truck_number,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	if _, err := tx.ExecContext(ctx, insertTrip,
		trip.ID.String(),
		trip.CurrentLocation, trip.Current.Lat, trip.Current.Lng,
		trip.PickupLocation, trip.Pickup.Lat, trip.Pickup.Lng,
		trip.DropoffLocation, trip.Dropoff.Lat, trip.Dropoff.Lng,
		trip.CurrentCycleHours,
		trip.DriverName, trip.CarrierName, trip.TruckNumber,
		trip.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("create trip: insert trip: %w", err)
	}

	insertSegment, err := tx.PrepareContext(ctx, `
	INSERT INTO route_segments (
		trip_id, start_location, end_location,
		distance_miles, duration_hours, segment_type, seg_order
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("create trip: prepare segment insert: %w", err)
	}
	defer insertSegment.Close()

	for _, seg := range trip.Segments {
		if _, err := insertSegment.ExecContext(ctx,
			trip.ID.String(), seg.StartLocation, seg.EndLocation,
			seg.DistanceMiles, seg.DurationHours, string(seg.Kind), seg.Order,
		); err != nil {
			return fmt.Errorf("create trip: insert segment order=%d: %w", seg.Order, err)
		}
	}

	insertEntry, err := tx.PrepareContext(ctx, `
	INSERT INTO log_entries (
		daily_log_id, start_time, end_time, duty_status, location, remarks
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("create trip: prepare entry insert: %w", err)
	}
	defer insertEntry.Close()

	for _, dl := range trip.DailyLogs {
		res, err := tx.ExecContext(ctx, `
		INSERT INTO daily_logs (
			trip_id, log_date, total_miles,
			total_hours_off_duty, total_hours_sleeper,
			total_hours_driving, total_hours_on_duty
		)
		VALUES (?, ?, ?, ?, ?, ?, ?);
		`,
			trip.ID.String(), dl.Date.Format(dateLayout), dl.TotalMiles,
			dl.TotalHoursOffDuty, dl.TotalHoursSleeper,
			dl.TotalHoursDriving, dl.TotalHoursOnDuty,
		)
		if err != nil {
			return fmt.Errorf("create trip: insert daily log %s: %w", dl.Date.Format(dateLayout), err)
		}

		logID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create trip: daily log id: %w", err)
		}

		for _, e := range dl.Entries {
			if _, err := insertEntry.ExecContext(ctx,
				logID,
				e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339),
				string(e.DutyStatus), e.Location, e.Remarks,
			); err != nil {
				return fmt.Errorf("create trip: insert log entry: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create trip: commit tx: %w", err)
	}

	return nil
}

// Retrieve a full trip aggregate by id.
func (s *SqliteTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	trip, err := s.scanTripRow(s.DB.QueryRowContext(ctx, `
	SELECT
		id,
		current_location, current_lat, current_lng,
		pickup_location, pickup_lat, pickup_lng,
		dropoff_location, dropoff_lat, dropoff_lng,
		current_cycle_hours,
		driver_name, carrier_name, truck_number,
		created_at
	FROM trips
	WHERE id = ?;
	`, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrTripNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	if trip.Segments, err = s.loadSegments(ctx, id); err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	if trip.DailyLogs, err = s.loadDailyLogs(ctx, id); err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	return trip, nil
}

// List trip headers, newest first. Segments and logs are not loaded.
func (s *SqliteTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		id,
		current_location, current_lat, current_lng,
		pickup_location, pickup_lat, pickup_lng,
		dropoff_location, dropoff_lat, dropoff_lng,
		current_cycle_hours,
		driver_name, carrier_name, truck_number,
		created_at
	FROM trips
	ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		trip, err := s.scanTripRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SqliteTripRepository) scanTripRow(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var rawID, rawCreated string

	if err := row.Scan(
		&rawID,
		&trip.CurrentLocation, &trip.Current.Lat, &trip.Current.Lng,
		&trip.PickupLocation, &trip.Pickup.Lat, &trip.Pickup.Lng,
		&trip.DropoffLocation, &trip.Dropoff.Lat, &trip.Dropoff.Lng,
		&trip.CurrentCycleHours,
		&trip.DriverName, &trip.CarrierName, &trip.TruckNumber,
		&rawCreated,
	); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse trip id %q: %w", rawID, err)
	}
	trip.ID = id

	created, err := time.Parse(time.RFC3339, rawCreated)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", rawCreated, err)
	}
	trip.CreatedAt = created

	return &trip, nil
}

func (s *SqliteTripRepository) loadSegments(ctx context.Context, tripID uuid.UUID) ([]domain.Segment, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT start_location, end_location, distance_miles, duration_hours, segment_type, seg_order
	FROM route_segments
	WHERE trip_id = ?
	ORDER BY seg_order;
	`, tripID.String())
	if err != nil {
		return nil, fmt.Errorf("query route_segments: %w", err)
	}
	defer rows.Close()

	var segments []domain.Segment
	for rows.Next() {
		var seg domain.Segment
		var kind string
		if err := rows.Scan(&seg.StartLocation, &seg.EndLocation, &seg.DistanceMiles, &seg.DurationHours, &kind, &seg.Order); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		seg.Kind = domain.SegmentKind(kind)
		segments = append(segments, seg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("segment iteration: %w", err)
	}

	return segments, nil
}

func (s *SqliteTripRepository) loadDailyLogs(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, log_date, total_miles,
		total_hours_off_duty, total_hours_sleeper,
		total_hours_driving, total_hours_on_duty
	FROM daily_logs
	WHERE trip_id = ?
	ORDER BY log_date;
	`, tripID.String())
	if err != nil {
		return nil, fmt.Errorf("query daily_logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DailyLog
	var logIDs []int64
	for rows.Next() {
		var dl domain.DailyLog
		var logID int64
		var rawDate string
		if err := rows.Scan(&logID, &rawDate, &dl.TotalMiles,
			&dl.TotalHoursOffDuty, &dl.TotalHoursSleeper,
			&dl.TotalHoursDriving, &dl.TotalHoursOnDuty,
		); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}

		date, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse log_date %q: %w", rawDate, err)
		}
		dl.Date = date

		logs = append(logs, dl)
		logIDs = append(logIDs, logID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily log iteration: %w", err)
	}

	for i, logID := range logIDs {
		entries, err := s.loadLogEntries(ctx, logID)
		if err != nil {
			return nil, err
		}
		logs[i].Entries = entries
	}

	return logs, nil
}

func (s *SqliteTripRepository) loadLogEntries(ctx context.Context, dailyLogID int64) ([]domain.LogEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT start_time, end_time, duty_status, location, remarks
	FROM log_entries
	WHERE daily_log_id = ?
	ORDER BY start_time;
	`, dailyLogID)
	if err != nil {
		return nil, fmt.Errorf("query log_entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var rawStart, rawEnd, status string
		if err := rows.Scan(&rawStart, &rawEnd, &status, &e.Location, &e.Remarks); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}

		if e.StartTime, err = time.Parse(time.RFC3339, rawStart); err != nil {
			return nil, fmt.Errorf("parse start_time %q: %w", rawStart, err)
		}
		if e.EndTime, err = time.Parse(time.RFC3339, rawEnd); err != nil {
			return nil, fmt.Errorf("parse end_time %q: %w", rawEnd, err)
		}
		e.DutyStatus = domain.DutyStatus(status)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log entry iteration: %w", err)
	}

	return entries, nil
}
