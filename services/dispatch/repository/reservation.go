package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
)

// waitSurchargePercent is the share of the vehicle rate billed per
// waiting minute at trip end
const waitSurchargePercent = 5

// ReservationRepo implements dispatch.ReservationRepo over PostgreSQL
type ReservationRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	clock clock.Clock
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(cfg *models.Config, db *sqlx.DB, clk clock.Clock) *ReservationRepo {
	return &ReservationRepo{
		cfg:   cfg,
		db:    db,
		clock: clk,
	}
}

const reservationColumns = `
	id, passenger_id, first_name, last_name, phone,
	pickup_lat, pickup_lng,
	pickup_street_no, pickup_route, pickup_city, pickup_province, pickup_zip_code,
	drop_street_no, drop_route, drop_city, drop_province, drop_zip_code,
	vehicle_type_id, driver_id, status, charge_cents, pickup_at,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*models.Reservation, error) {
	r := &models.Reservation{}
	var status string
	err := row.Scan(
		&r.ID, &r.PassengerID, &r.FirstName, &r.LastName, &r.Phone,
		&r.PickupLat, &r.PickupLng,
		&r.PickupAddress.StreetNo, &r.PickupAddress.Route, &r.PickupAddress.City,
		&r.PickupAddress.Province, &r.PickupAddress.ZipCode,
		&r.DropAddress.StreetNo, &r.DropAddress.Route, &r.DropAddress.City,
		&r.DropAddress.Province, &r.DropAddress.ZipCode,
		&r.VehicleTypeID, &r.DriverID, &status, &r.ChargeCents, &r.PickupAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Status = models.ReservationStatus(status)
	return r, nil
}

// CreateReservation inserts a new reservation in state NOT_ASSIGNED
func (r *ReservationRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	query := `
		INSERT INTO reservations (
			passenger_id, first_name, last_name, phone,
			pickup_lat, pickup_lng,
			pickup_street_no, pickup_route, pickup_city, pickup_province, pickup_zip_code,
			drop_street_no, drop_route, drop_city, drop_province, drop_zip_code,
			vehicle_type_id, status, charge_cents, pickup_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW()
		)
		RETURNING ` + reservationColumns

	row := r.db.QueryRowContext(ctx, query,
		reservation.PassengerID, reservation.FirstName, reservation.LastName, reservation.Phone,
		reservation.PickupLat, reservation.PickupLng,
		reservation.PickupAddress.StreetNo, reservation.PickupAddress.Route, reservation.PickupAddress.City,
		reservation.PickupAddress.Province, reservation.PickupAddress.ZipCode,
		reservation.DropAddress.StreetNo, reservation.DropAddress.Route, reservation.DropAddress.City,
		reservation.DropAddress.Province, reservation.DropAddress.ZipCode,
		reservation.VehicleTypeID, string(models.StatusNotAssigned), reservation.ChargeCents, reservation.PickupAt,
	)

	created, err := scanReservation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}
	return created, nil
}

// GetReservation retrieves a reservation by ID
func (r *ReservationRepo) GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// ListReservations lists reservations matching the filter, most recent
// pickup first
func (r *ReservationRepo) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []interface{}{}

	if filter.PassengerID != "" {
		args = append(args, filter.PassengerID)
		query += fmt.Sprintf(" AND passenger_id = $%d", len(args))
	}
	if filter.DriverID != "" {
		args = append(args, filter.DriverID)
		query += fmt.Sprintf(" AND driver_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY pickup_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// lockReservation reads the reservation row inside tx with a row lock
func lockReservation(ctx context.Context, tx *sqlx.Tx, reservationID int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(tx.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}
	return res, nil
}

// AssignDriver offers the reservation to a driver. Legal from
// NOT_ASSIGNED, ASSIGNED and REJECTED; re-offering after a rejection
// goes through here again.
func (r *ReservationRepo) AssignDriver(ctx context.Context, reservationID int64, driverID string) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Status.Offerable() {
		return nil, dispatch.ErrInvalidTransition
	}

	updated, err := scanReservation(tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET driver_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reservationColumns,
		reservationID, driverID, string(models.StatusAssigned),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}
	return updated, nil
}

// MarkAccepted records the driver's acceptance. Requires an assigned
// driver on the reservation.
func (r *ReservationRepo) MarkAccepted(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Status.Offerable() || res.DriverID == nil {
		return nil, dispatch.ErrInvalidTransition
	}

	updated, err := scanReservation(tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reservationColumns,
		reservationID, string(models.StatusAccepted),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to mark accepted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance: %w", err)
	}
	return updated, nil
}

// MarkRejected records the driver's rejection and clears the driver so
// the requester can re-offer
func (r *ReservationRepo) MarkRejected(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Status.Offerable() {
		return nil, dispatch.ErrInvalidTransition
	}

	updated, err := scanReservation(tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET driver_id = NULL, status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reservationColumns,
		reservationID, string(models.StatusRejected),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to mark rejected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}
	return updated, nil
}

// EndTrip closes out the trip. A still-running wait timer is stopped
// first, then the accumulated waiting minutes are billed at
// waitSurchargePercent of the vehicle rate per minute and folded into
// the charge. The charge never decreases.
//
// Deliberately unguarded by status, matching the observed lifecycle.
func (r *ReservationRepo) EndTrip(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}

	waitedMinutes, err := r.settleWaitTimer(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}

	surcharge := int64(0)
	if waitedMinutes > 0 {
		var rateCents int64
		err = tx.QueryRowContext(ctx,
			`SELECT rate_cents FROM vehicle_types WHERE id = $1`,
			res.VehicleTypeID,
		).Scan(&rateCents)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, dispatch.ErrVehicleTypeNotFound
			}
			return nil, fmt.Errorf("failed to read vehicle rate: %w", err)
		}
		surcharge = waitedMinutes * rateCents * waitSurchargePercent / 100
	}

	updated, err := scanReservation(tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET charge_cents = charge_cents + $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reservationColumns,
		reservationID, surcharge, string(models.StatusEnded),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to end trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trip end: %w", err)
	}
	return updated, nil
}

// settleWaitTimer stops a running wait timer inside tx and returns the
// total accumulated minutes for the reservation. Zero when no timer
// record exists.
func (r *ReservationRepo) settleWaitTimer(ctx context.Context, tx *sqlx.Tx, reservationID int64) (int64, error) {
	wt := models.WaitingTime{}
	err := tx.QueryRowContext(ctx, `
		SELECT reservation_id, status, start_time, duration_minutes
		FROM waiting_times WHERE reservation_id = $1 FOR UPDATE`,
		reservationID,
	).Scan(&wt.ReservationID, &wt.Status, &wt.StartTime, &wt.DurationMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read waiting time: %w", err)
	}

	total := wt.AccumulatedMinutes()
	if wt.Status && wt.StartTime != nil {
		elapsed := int64(r.clock.Now().Sub(*wt.StartTime).Minutes())
		total += elapsed
		_, err = tx.ExecContext(ctx, `
			UPDATE waiting_times
			SET status = FALSE, start_time = NULL, duration_minutes = $2
			WHERE reservation_id = $1`,
			reservationID, total,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to stop waiting timer: %w", err)
		}
	}
	return total, nil
}

// CreateFeedback records the passenger's feedback and closes the
// reservation. Requires an assigned driver, a registered passenger and
// no prior feedback.
func (r *ReservationRepo) CreateFeedback(ctx context.Context, reservationID int64, rating int, comment string) (*models.Feedback, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := lockReservation(ctx, tx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.DriverID == nil || !res.ByPassenger() {
		return nil, dispatch.ErrFeedbackNotAllowed
	}
	if res.Status == models.StatusEndedFeedbackLeft {
		return nil, dispatch.ErrFeedbackExists
	}

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM feedback WHERE reservation_id = $1`,
		reservationID,
	).Scan(&existing); err != nil {
		return nil, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if existing > 0 {
		return nil, dispatch.ErrFeedbackExists
	}

	fb := &models.Feedback{
		ReservationID: reservationID,
		DriverID:      *res.DriverID,
		PassengerID:   *res.PassengerID,
		Rating:        rating,
		Comment:       comment,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO feedback (reservation_id, driver_id, passenger_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`,
		fb.ReservationID, fb.DriverID, fb.PassengerID, fb.Rating, fb.Comment,
	).Scan(&fb.ID, &fb.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`,
		reservationID, string(models.StatusEndedFeedbackLeft),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to close reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit feedback: %w", err)
	}
	return fb, nil
}

// ClearDriverAssignments detaches a removed driver from every
// reservation referencing them and flips their availability off.
// Reservation statuses are intentionally left untouched.
func (r *ReservationRepo) ClearDriverAssignments(ctx context.Context, driverID string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE reservations SET driver_id = NULL, updated_at = NOW() WHERE driver_id = $1`,
		driverID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear driver assignments: %w", err)
	}
	cleared, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared assignments: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE driver_availability SET status = FALSE, updated_at = NOW() WHERE driver_id = $1`,
		driverID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark driver offline: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit driver removal: %w", err)
	}
	return cleared, nil
}
