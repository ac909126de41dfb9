package drivers

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// DriversUC defines the driver availability usecase operations
type DriversUC interface {
	// ToggleAvailability flips a driver online or offline, bumps the
	// daily toggle counter and mirrors the change into the online pool.
	ToggleAvailability(ctx context.Context, driverID string, online bool) (*models.DriverAvailability, error)
	// GetAvailability returns a driver's current online/offline record.
	GetAvailability(ctx context.Context, driverID string) (*models.DriverAvailability, error)
	// DailyStatusCounts returns a driver's per-day toggle counters.
	DailyStatusCounts(ctx context.Context, driverID string) ([]models.DriverStatusCount, error)
}
