package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/waittime"
)

// WaitTimeRepo implements waittime.WaitTimeRepo on Postgres
type WaitTimeRepo struct {
	db *sqlx.DB
}

// NewWaitTimeRepo creates a new waiting-time repository
func NewWaitTimeRepo(db *sqlx.DB) *WaitTimeRepo {
	return &WaitTimeRepo{db: db}
}

// ReservationExists reports whether the reservation is known
func (r *WaitTimeRepo) ReservationExists(ctx context.Context, reservationID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, reservationID)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// StartTimer upserts the reservation's timer to running. Starting an
// already running timer only moves the start instant; the settled
// duration stays as it was.
func (r *WaitTimeRepo) StartTimer(ctx context.Context, reservationID int64, startedAt time.Time) (*models.WaitingTime, error) {
	var timer models.WaitingTime
	err := r.db.GetContext(ctx, &timer, `
		INSERT INTO waiting_times (reservation_id, status, start_time)
		VALUES ($1, TRUE, $2)
		ON CONFLICT (reservation_id)
		DO UPDATE SET status = TRUE, start_time = EXCLUDED.start_time
		RETURNING reservation_id, status, start_time, duration_minutes`,
		reservationID, startedAt)
	if err != nil {
		return nil, err
	}
	return &timer, nil
}

// StopTimer stops a running timer, folding the elapsed whole minutes
// into the settled duration. Partial minutes are dropped.
func (r *WaitTimeRepo) StopTimer(ctx context.Context, reservationID int64, stoppedAt time.Time) (*models.WaitingTime, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var timer models.WaitingTime
	err = tx.GetContext(ctx, &timer, `
		SELECT reservation_id, status, start_time, duration_minutes
		FROM waiting_times
		WHERE reservation_id = $1
		FOR UPDATE`, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, waittime.ErrTimerNotRunning
		}
		return nil, err
	}
	if !timer.Status || timer.StartTime == nil {
		return nil, waittime.ErrTimerNotRunning
	}

	elapsedMinutes := int64(stoppedAt.Sub(*timer.StartTime).Seconds()) / 60
	total := timer.AccumulatedMinutes() + elapsedMinutes

	err = tx.GetContext(ctx, &timer, `
		UPDATE waiting_times
		SET status = FALSE, start_time = NULL, duration_minutes = $2
		WHERE reservation_id = $1
		RETURNING reservation_id, status, start_time, duration_minutes`,
		reservationID, total)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &timer, nil
}

// GetTimer returns the reservation's waiting-time record
func (r *WaitTimeRepo) GetTimer(ctx context.Context, reservationID int64) (*models.WaitingTime, error) {
	var timer models.WaitingTime
	err := r.db.GetContext(ctx, &timer, `
		SELECT reservation_id, status, start_time, duration_minutes
		FROM waiting_times
		WHERE reservation_id = $1`, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, waittime.ErrTimerNotFound
		}
		return nil, err
	}
	return &timer, nil
}
