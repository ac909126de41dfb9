package dispatch

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// DispatchUC defines the reservation lifecycle operations
type DispatchUC interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]*models.Reservation, error)

	AssignDriver(ctx context.Context, reservationID int64, driverID string) (*models.Reservation, error)
	Accept(ctx context.Context, reservationID int64) (*models.Reservation, error)
	Reject(ctx context.Context, reservationID int64) (*models.Reservation, error)
	EndTrip(ctx context.Context, reservationID int64) (*models.Reservation, error)
	RecordFeedback(ctx context.Context, reservationID int64, rating int, comment string) (*models.Feedback, error)

	RemoveDriverAccount(ctx context.Context, driverID string) error
}
