package usecase

import (
	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/drivers"
)

// DriversUC implements the driver availability usecase
type DriversUC struct {
	cfg    *models.Config
	repo   drivers.DriversRepo
	poolGW drivers.PoolGW
	clock  clock.Clock
}

// NewDriversUC creates a new driver availability usecase
func NewDriversUC(cfg *models.Config, repo drivers.DriversRepo, poolGW drivers.PoolGW, clk clock.Clock) *DriversUC {
	return &DriversUC{
		cfg:    cfg,
		repo:   repo,
		poolGW: poolGW,
		clock:  clk,
	}
}
