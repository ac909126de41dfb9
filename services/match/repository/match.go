package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nyctaxi/dispatch/internal/pkg/constants"
	"github.com/nyctaxi/dispatch/internal/pkg/database"
	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/match"
)

// MatchRepo implements match.MatchRepo on Postgres, with the Redis
// online-driver pool as a secondary liveness filter
type MatchRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewMatchRepo creates a new match repository
func NewMatchRepo(db *sqlx.DB, redis *database.RedisClient) *MatchRepo {
	return &MatchRepo{db: db, redis: redis}
}

// GetReservation loads the slice of a reservation the matcher reads:
// pickup point, requested vehicle type and lifecycle state
func (r *MatchRepo) GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.GetContext(ctx, &reservation, `
		SELECT id, pickup_lat, pickup_lng, vehicle_type_id, status
		FROM reservations
		WHERE id = $1`, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// FindDriversInBox returns available drivers of the requested vehicle
// type whose last reported position lies inside the bounding box
func (r *MatchRepo) FindDriversInBox(ctx context.Context, box models.BoundingBox, vehicleTypeID int64) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := r.db.SelectContext(ctx, &candidates, `
		SELECT u.id AS driver_id,
		       u.first_name,
		       u.last_name,
		       u.phone,
		       vt.brand,
		       vt.seats,
		       dl.latitude,
		       dl.longitude
		FROM driver_locations dl
		JOIN users u ON u.id = dl.driver_id
		JOIN driver_vehicles dv ON dv.driver_id = dl.driver_id
		JOIN vehicle_types vt ON vt.id = dv.vehicle_type_id
		JOIN driver_availability da ON da.driver_id = dl.driver_id
		WHERE da.status = TRUE
		  AND dv.vehicle_type_id = $1
		  AND dl.latitude BETWEEN $2 AND $3
		  AND dl.longitude BETWEEN $4 AND $5
		ORDER BY dl.updated_at DESC`,
		vehicleTypeID, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetFeedbackRatings returns every feedback rating left for a driver.
// Feedback rows carry the driver directly: the reservation's driver_id
// is nulled out when a driver account is removed, and past ratings must
// survive that.
func (r *MatchRepo) GetFeedbackRatings(ctx context.Context, driverID string) ([]int, error) {
	ratings := []int{}
	err := r.db.SelectContext(ctx, &ratings, `
		SELECT rating
		FROM feedback
		WHERE driver_id = $1`, driverID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// FilterOnline cross-checks candidates against the Redis online pool.
// When the pool is unreachable the Postgres result stands as-is: the
// availability table is the source of truth, Redis only trims drivers
// whose connection dropped without a toggle.
func (r *MatchRepo) FilterOnline(ctx context.Context, candidates []models.Candidate) ([]models.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	ids := make([]interface{}, len(candidates))
	for i, c := range candidates {
		ids[i] = c.DriverID
	}

	online, err := r.redis.SMIsMember(ctx, constants.KeyOnlineDrivers, ids...)
	if err != nil {
		logger.Warn("Online pool check failed, keeping database result",
			logger.Err(err))
		return candidates, nil
	}

	filtered := make([]models.Candidate, 0, len(candidates))
	for i, c := range candidates {
		if online[i] {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
