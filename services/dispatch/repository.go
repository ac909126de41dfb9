package dispatch

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// ReservationRepo defines data access for the reservation lifecycle.
// Every transition method runs its read-validate-write cycle inside one
// transaction with the reservation row locked, so concurrent offers for
// the same reservation serialize.
type ReservationRepo interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]*models.Reservation, error)

	AssignDriver(ctx context.Context, reservationID int64, driverID string) (*models.Reservation, error)
	MarkAccepted(ctx context.Context, reservationID int64) (*models.Reservation, error)
	MarkRejected(ctx context.Context, reservationID int64) (*models.Reservation, error)

	// EndTrip stops a running wait timer, folds the accumulated minutes
	// into the charge and marks the reservation ended, atomically
	EndTrip(ctx context.Context, reservationID int64) (*models.Reservation, error)

	CreateFeedback(ctx context.Context, reservationID int64, rating int, comment string) (*models.Feedback, error)

	// ClearDriverAssignments nulls the driver on every reservation
	// referencing the driver and flips their availability off. Returns
	// the number of reservations touched.
	ClearDriverAssignments(ctx context.Context, driverID string) (int64, error)

	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error)
	GetVehicleType(ctx context.Context, vehicleTypeID int64) (*models.VehicleType, error)
}
