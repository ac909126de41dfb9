package waittime

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// WaitTimeUC defines the waiting-time meter usecase operations
type WaitTimeUC interface {
	// ToggleTimer starts or stops the waiting-time meter for a
	// reservation. Starting an already running timer restarts the
	// current interval without folding it into the settled duration.
	ToggleTimer(ctx context.Context, reservationID int64, starting bool) (*models.WaitingTime, error)
	// GetTimer returns the reservation's waiting-time record.
	GetTimer(ctx context.Context, reservationID int64) (*models.WaitingTime, error)
}
