package drivers

import (
	"context"
	"time"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// DriversRepo defines the data access operations for driver availability
type DriversRepo interface {
	// SetAvailability upserts the driver's single availability record.
	SetAvailability(ctx context.Context, driverID string, online bool) (*models.DriverAvailability, error)
	// GetAvailability returns the driver's availability record.
	GetAvailability(ctx context.Context, driverID string) (*models.DriverAvailability, error)
	// BumpStatusCount increments the driver's toggle counter for the day,
	// creating the day's row when it is the first toggle.
	BumpStatusCount(ctx context.Context, driverID string, day time.Time, online bool) error
	// ListStatusCounts returns the driver's per-day counters, newest first.
	ListStatusCounts(ctx context.Context, driverID string) ([]models.DriverStatusCount, error)
	// GetDriverLocation returns the driver's last known position.
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error)
}

// PoolGW mirrors availability changes into the shared online-driver pool.
// Pool set membership and the geo index are separate writes: a driver
// must join the set the moment they go online, even before their first
// location report lands.
type PoolGW interface {
	// AddDriver marks the driver online in the pool set.
	AddDriver(ctx context.Context, driverID string) error
	// IndexDriverLocation records the driver's position in the geo index.
	IndexDriverLocation(ctx context.Context, driverID string, latitude, longitude float64) error
	// RemoveDriver drops the driver from the online pool and geo index.
	RemoveDriver(ctx context.Context, driverID string) error
}
