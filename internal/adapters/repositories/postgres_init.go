package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the shared leg cache deployment.
// Trip storage stays on SQLite; only the cache benefits from being
// shared across instances.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS leg_cache (
		origin_lat DOUBLE PRECISION NOT NULL,
		origin_lng DOUBLE PRECISION NOT NULL,
		dest_lat DOUBLE PRECISION NOT NULL,
		dest_lng DOUBLE PRECISION NOT NULL,
		distance_miles DOUBLE PRECISION NOT NULL,
		duration_hours DOUBLE PRECISION NOT NULL,
		geometry TEXT NOT NULL,
		PRIMARY KEY (origin_lat, origin_lng, dest_lat, dest_lng)
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init postgres schema: create leg_cache: %w", err)
	}

	return nil
}
