package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/drivers"
)

// DriversRepo implements drivers.DriversRepo on Postgres
type DriversRepo struct {
	db *sqlx.DB
}

// NewDriversRepo creates a new driver availability repository
func NewDriversRepo(db *sqlx.DB) *DriversRepo {
	return &DriversRepo{db: db}
}

// SetAvailability upserts the driver's single availability record
func (r *DriversRepo) SetAvailability(ctx context.Context, driverID string, online bool) (*models.DriverAvailability, error) {
	var availability models.DriverAvailability
	err := r.db.GetContext(ctx, &availability, `
		INSERT INTO driver_availability (driver_id, status, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (driver_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING driver_id, status, updated_at`,
		driverID, online)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// GetAvailability returns the driver's availability record
func (r *DriversRepo) GetAvailability(ctx context.Context, driverID string) (*models.DriverAvailability, error) {
	var availability models.DriverAvailability
	err := r.db.GetContext(ctx, &availability, `
		SELECT driver_id, status, updated_at
		FROM driver_availability
		WHERE driver_id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrDriverNotFound
		}
		return nil, err
	}
	return &availability, nil
}

// BumpStatusCount increments the driver's toggle counter for the day.
// The (driver_id, date) unique constraint makes the first toggle of a
// day insert the row with a count of one.
func (r *DriversRepo) BumpStatusCount(ctx context.Context, driverID string, day time.Time, online bool) error {
	onlineInc, offlineInc := 0, 1
	if online {
		onlineInc, offlineInc = 1, 0
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO driver_status_counts (driver_id, date, online_count, offline_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (driver_id, date)
		DO UPDATE SET
			online_count  = driver_status_counts.online_count + EXCLUDED.online_count,
			offline_count = driver_status_counts.offline_count + EXCLUDED.offline_count`,
		driverID, day, onlineInc, offlineInc)
	return err
}

// ListStatusCounts returns the driver's per-day counters, newest first
func (r *DriversRepo) ListStatusCounts(ctx context.Context, driverID string) ([]models.DriverStatusCount, error) {
	counts := []models.DriverStatusCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT driver_id, date, online_count, offline_count
		FROM driver_status_counts
		WHERE driver_id = $1
		ORDER BY date DESC`, driverID)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetDriverLocation returns the driver's last known position
func (r *DriversRepo) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error) {
	var location models.DriverLocation
	err := r.db.GetContext(ctx, &location, `
		SELECT driver_id, latitude, longitude, route, city
		FROM driver_locations
		WHERE driver_id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}
