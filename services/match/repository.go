package match

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// MatchRepo defines the data access operations for driver matching
type MatchRepo interface {
	// GetReservation loads the reservation being matched.
	GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error)
	// FindDriversInBox returns available drivers of the given vehicle type
	// whose last known position falls inside the bounding box.
	FindDriversInBox(ctx context.Context, box models.BoundingBox, vehicleTypeID int64) ([]models.Candidate, error)
	// GetFeedbackRatings returns all feedback ratings recorded for a driver.
	GetFeedbackRatings(ctx context.Context, driverID string) ([]int, error)
	// FilterOnline drops candidates missing from the online driver pool.
	FilterOnline(ctx context.Context, candidates []models.Candidate) ([]models.Candidate, error)
}
