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

// SQLLegCache is the Postgres variant of the leg cache, for deployments
// that share one cache across service instances.
type SQLLegCache struct {
	DB *sql.DB
}

func NewSQLLegCache(db *sql.DB) *SQLLegCache {
	return &SQLLegCache{DB: db}
}

// Fetch cached route data for one origin/destination pair.
func (s *SQLLegCache) Get(ctx context.Context, origin, destination domain.Point) (_ ports.RouteData, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteData{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_miles, duration_hours, geometry
	FROM leg_cache
	WHERE origin_lat = $1 AND origin_lng = $2 AND dest_lat = $3 AND dest_lng = $4;
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
func (s *SQLLegCache) Put(ctx context.Context, origin, destination domain.Point, data ports.RouteData) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT INTO leg_cache (
		origin_lat, origin_lng, dest_lat, dest_lng,
		distance_miles, duration_hours, geometry
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (origin_lat, origin_lng, dest_lat, dest_lng) DO UPDATE
	SET distance_miles = EXCLUDED.distance_miles,
		duration_hours = EXCLUDED.duration_hours,
		geometry = EXCLUDED.geometry;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		origin.Lat, origin.Lng, destination.Lat, destination.Lng,
		data.DistanceMiles, data.DurationHours, data.Geometry,
	); err != nil {
		return fmt.Errorf("insert leg cache: %w", err)
	}

	return nil
}
