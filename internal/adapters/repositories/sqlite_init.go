package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		current_location TEXT NOT NULL,
		current_lat REAL NOT NULL,
		current_lng REAL NOT NULL,
		pickup_location TEXT NOT NULL,
		pickup_lat REAL NOT NULL,
		pickup_lng REAL NOT NULL,
		dropoff_location TEXT NOT NULL,
		dropoff_lat REAL NOT NULL,
		dropoff_lng REAL NOT NULL,
		current_cycle_hours REAL NOT NULL,
		driver_name TEXT NOT NULL,
		carrier_name TEXT NOT NULL,
		truck_number TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS route_segments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		start_location TEXT NOT NULL,
		end_location TEXT NOT NULL,
		distance_miles REAL NOT NULL,
		duration_hours REAL NOT NULL,
		segment_type TEXT NOT NULL,
		seg_order INTEGER NOT NULL
	);
	`

	createDailyLogsQuery := `
	CREATE TABLE IF NOT EXISTS daily_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		log_date TEXT NOT NULL,
		total_miles REAL NOT NULL,
		total_hours_off_duty REAL NOT NULL,
		total_hours_sleeper REAL NOT NULL,
		total_hours_driving REAL NOT NULL,
		total_hours_on_duty REAL NOT NULL
	);
	`

	createLogEntriesQuery := `
	CREATE TABLE IF NOT EXISTS log_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		daily_log_id INTEGER NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		duty_status TEXT NOT NULL,
		location TEXT NOT NULL,
		remarks TEXT NOT NULL
	);
	`

	createLegCacheQuery := `
	CREATE TABLE IF NOT EXISTS leg_cache (
		origin_lat REAL NOT NULL,
		origin_lng REAL NOT NULL,
		dest_lat REAL NOT NULL,
		dest_lng REAL NOT NULL,
		distance_miles REAL NOT NULL,
		duration_hours REAL NOT NULL,
		geometry TEXT NOT NULL,
		PRIMARY KEY (origin_lat, origin_lng, dest_lat, dest_lng)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_segments_trip_order
	ON route_segments(trip_id, seg_order);
	`

	statements := []string{
		createTripsQuery,
		createSegmentsQuery,
		createDailyLogsQuery,
		createLogEntriesQuery,
		createLegCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
