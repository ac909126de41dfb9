package usecase

import (
	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/waittime"
)

// WaitTimeUC implements the waiting-time meter usecase
type WaitTimeUC struct {
	cfg   *models.Config
	repo  waittime.WaitTimeRepo
	clock clock.Clock
}

// NewWaitTimeUC creates a new waiting-time usecase
func NewWaitTimeUC(cfg *models.Config, repo waittime.WaitTimeRepo, clk clock.Clock) *WaitTimeUC {
	return &WaitTimeUC{
		cfg:   cfg,
		repo:  repo,
		clock: clk,
	}
}
