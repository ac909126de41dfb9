package gateway

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/constants"
	"github.com/nyctaxi/dispatch/internal/pkg/database"
)

// DriverPoolGW maintains the Redis online-driver pool mirror
type DriverPoolGW struct {
	redisClient *database.RedisClient
}

// NewDriverPoolGW creates a new driver pool gateway
func NewDriverPoolGW(redisClient *database.RedisClient) *DriverPoolGW {
	return &DriverPoolGW{redisClient: redisClient}
}

// AddDriver marks the driver online in the pool set
func (g *DriverPoolGW) AddDriver(ctx context.Context, driverID string) error {
	return g.redisClient.SAdd(ctx, constants.KeyOnlineDrivers, driverID)
}

// IndexDriverLocation records the driver's position in the geo index
func (g *DriverPoolGW) IndexDriverLocation(ctx context.Context, driverID string, latitude, longitude float64) error {
	return g.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, longitude, latitude, driverID)
}

// RemoveDriver drops the driver from the online pool and the geo index
func (g *DriverPoolGW) RemoveDriver(ctx context.Context, driverID string) error {
	if err := g.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driverID); err != nil {
		return err
	}
	return g.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID)
}
