package waittime

import (
	"context"
	"time"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// WaitTimeRepo defines the data access operations for waiting-time meters
type WaitTimeRepo interface {
	// ReservationExists reports whether the reservation is known.
	ReservationExists(ctx context.Context, reservationID int64) (bool, error)
	// StartTimer upserts the reservation's timer to running with the
	// given start instant, leaving the settled duration untouched.
	StartTimer(ctx context.Context, reservationID int64, startedAt time.Time) (*models.WaitingTime, error)
	// StopTimer stops a running timer, folding the elapsed whole minutes
	// into the settled duration as of the given instant.
	StopTimer(ctx context.Context, reservationID int64, stoppedAt time.Time) (*models.WaitingTime, error)
	// GetTimer returns the reservation's waiting-time record.
	GetTimer(ctx context.Context, reservationID int64) (*models.WaitingTime, error)
}
