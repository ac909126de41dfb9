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

// RemoveDriver drops a driver from the online pool and the geo index
func (g *DriverPoolGW) RemoveDriver(ctx context.Context, driverID string) error {
	if err := g.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driverID); err != nil {
		return err
	}
	return g.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID)
}
