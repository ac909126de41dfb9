package usecase

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/waittime"
)

// ToggleTimer starts or stops the waiting-time meter for a reservation
func (uc *WaitTimeUC) ToggleTimer(ctx context.Context, reservationID int64, starting bool) (*models.WaitingTime, error) {
	exists, err := uc.repo.ReservationExists(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, waittime.ErrReservationNotFound
	}

	now := uc.clock.Now()
	if starting {
		timer, err := uc.repo.StartTimer(ctx, reservationID, now)
		if err != nil {
			return nil, err
		}
		logger.Info("Waiting timer started",
			logger.Int64("reservation_id", reservationID))
		return timer, nil
	}

	timer, err := uc.repo.StopTimer(ctx, reservationID, now)
	if err != nil {
		return nil, err
	}
	logger.Info("Waiting timer stopped",
		logger.Int64("reservation_id", reservationID),
		logger.Int64("duration_minutes", timer.AccumulatedMinutes()))
	return timer, nil
}

// GetTimer returns the reservation's waiting-time record
func (uc *WaitTimeUC) GetTimer(ctx context.Context, reservationID int64) (*models.WaitingTime, error) {
	return uc.repo.GetTimer(ctx, reservationID)
}
