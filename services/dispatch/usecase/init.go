package usecase

import (
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg      *models.Config
	repo     dispatch.ReservationRepo
	notifyGW dispatch.NotifyGW
	poolGW   dispatch.DriverPoolGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.ReservationRepo,
	notifyGW dispatch.NotifyGW,
	poolGW dispatch.DriverPoolGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:      cfg,
		repo:     repo,
		notifyGW: notifyGW,
		poolGW:   poolGW,
	}
}
