package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
)

// GetUser retrieves a user by ID
func (r *ReservationRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, phone, user_type
		FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Phone, &user.UserType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetDriverProfile retrieves a driver together with their vehicle and
// vehicle type, the bundle needed to notify a requester about them
func (r *ReservationRepo) GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	profile := &models.DriverProfile{}
	err := r.db.QueryRowContext(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.phone, u.user_type,
		       v.driver_id, v.brand, v.seats, v.vehicle_type_id,
		       t.id, t.type, t.rate_cents
		FROM users u
		JOIN driver_vehicles v ON v.driver_id = u.id
		JOIN vehicle_types t ON t.id = v.vehicle_type_id
		WHERE u.id = $1`,
		driverID,
	).Scan(
		&profile.User.ID, &profile.User.FirstName, &profile.User.LastName,
		&profile.User.Phone, &profile.User.UserType,
		&profile.Vehicle.DriverID, &profile.Vehicle.Brand, &profile.Vehicle.Seats,
		&profile.Vehicle.VehicleTypeID,
		&profile.VehicleType.ID, &profile.VehicleType.Type, &profile.VehicleType.RateCents,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return profile, nil
}

// GetVehicleType retrieves a vehicle type by ID
func (r *ReservationRepo) GetVehicleType(ctx context.Context, vehicleTypeID int64) (*models.VehicleType, error) {
	vt := &models.VehicleType{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, type, rate_cents FROM vehicle_types WHERE id = $1`,
		vehicleTypeID,
	).Scan(&vt.ID, &vt.Type, &vt.RateCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrVehicleTypeNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle type: %w", err)
	}
	return vt, nil
}
