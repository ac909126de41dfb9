package match

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// MatchUC defines the match service usecase operations
type MatchUC interface {
	// FindCandidates searches for available drivers around a reservation's
	// pickup point, widening the search area until candidates are found.
	FindCandidates(ctx context.Context, reservationID int64) (*models.MatchResult, error)
	// AverageRating returns a driver's mean feedback rating rounded to one
	// decimal place, or 0.0 when the driver has no feedback yet.
	AverageRating(ctx context.Context, driverID string) (float64, error)
}
