package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
)

// SQLite-backed cache of coordinate pair -> route data for single-node
// deployments. Keys are the exact coordinates, so callers must pass the
// same values they plan with.
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

// Fetch cached route data for one origin/destination pair.
func (s *SqliteLegCache) Get(ctx context.Context, origin, destination domain.Point) (_ ports.RouteData, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteData{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_miles, duration_hours, geometry
	FROM leg_cache
	WHERE origin_lat = ? AND origin_lng = ? AND dest_lat = ? AND dest_lng = ?;
	`

	var data ports.RouteData
	row := s.DB.QueryRowContext(ctx, q, origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	if err := row.Scan(&data.DistanceMiles, &data.DurationHours, &data.Geometry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteData{}, false, nil
		}
		return ports.RouteData{}, false, fmt.Errorf("get leg cache: scan row: %w", err)
	}

	return data, true, nil
}

// Store route data for a pair, replacing any previous value.
func (s *SqliteLegCache) Put(ctx context.Context, origin, destination domain.Point, data ports.RouteData) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO leg_cache (
		origin_lat, origin_lng, dest_lat, dest_lng,
		distance_miles, duration_hours, geometry
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		origin.Lat, origin.Lng, destination.Lat, destination.Lng,
		data.DistanceMiles, data.DurationHours, data.Geometry,
	); err != nil {
		return fmt.Errorf("insert leg cache: %w", err)
	}

	return nil
}
