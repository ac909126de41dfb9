package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/drivers"
)

// ToggleAvailability flips a driver online or offline. The Postgres
// availability row is the source of truth; the Redis pool mirror is
// best effort and a failed mirror update never fails the toggle.
func (uc *DriversUC) ToggleAvailability(ctx context.Context, driverID string, online bool) (*models.DriverAvailability, error) {
	availability, err := uc.repo.SetAvailability(ctx, driverID, online)
	if err != nil {
		return nil, err
	}

	day := uc.clock.Now().UTC().Truncate(24 * time.Hour)
	if err := uc.repo.BumpStatusCount(ctx, driverID, day, online); err != nil {
		return nil, err
	}

	uc.mirrorToPool(ctx, driverID, online)

	logger.Info("Driver availability toggled",
		logger.String("driver_id", driverID),
		logger.Bool("online", online))
	return availability, nil
}

// GetAvailability returns a driver's current online/offline record
func (uc *DriversUC) GetAvailability(ctx context.Context, driverID string) (*models.DriverAvailability, error) {
	return uc.repo.GetAvailability(ctx, driverID)
}

// DailyStatusCounts returns a driver's per-day toggle counters
func (uc *DriversUC) DailyStatusCounts(ctx context.Context, driverID string) ([]models.DriverStatusCount, error) {
	return uc.repo.ListStatusCounts(ctx, driverID)
}

func (uc *DriversUC) mirrorToPool(ctx context.Context, driverID string, online bool) {
	if !online {
		if err := uc.poolGW.RemoveDriver(ctx, driverID); err != nil {
			logger.Warn("Failed to remove driver from online pool",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
		return
	}

	// Pool membership first: the matcher drops candidates missing from
	// the set, so a driver must join it even before their first
	// location report.
	if err := uc.poolGW.AddDriver(ctx, driverID); err != nil {
		logger.Warn("Failed to add driver to online pool",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	location, err := uc.repo.GetDriverLocation(ctx, driverID)
	if err != nil {
		// No position yet just keeps the driver out of the geo index
		if !errors.Is(err, drivers.ErrLocationNotFound) {
			logger.Warn("Failed to load driver location",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
		return
	}

	if err := uc.poolGW.IndexDriverLocation(ctx, driverID, location.Latitude, location.Longitude); err != nil {
		logger.Warn("Failed to index driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
}
