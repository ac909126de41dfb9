package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
)

// CreateReservation validates and stores a new booking in state
// NOT_ASSIGNED. Operator bookings on a walk-in customer's behalf must
// carry the customer's name and phone since there is no passenger
// account to look them up from.
func (uc *DispatchUC) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if !reservation.ByPassenger() {
		if reservation.FirstName == nil || *reservation.FirstName == "" ||
			reservation.LastName == nil || *reservation.LastName == "" ||
			reservation.Phone == nil || *reservation.Phone == "" {
			return nil, dispatch.ErrOperatorDetailsRequired
		}
	}

	if _, err := uc.repo.GetVehicleType(ctx, reservation.VehicleTypeID); err != nil {
		return nil, err
	}

	created, err := uc.repo.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	logger.Info("Reservation created",
		logger.Int64("reservation_id", created.ID),
		logger.Bool("by_passenger", created.ByPassenger()))
	return created, nil
}

// GetReservation retrieves a reservation by ID
func (uc *DispatchUC) GetReservation(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	return uc.repo.GetReservation(ctx, reservationID)
}

// ListReservations lists reservations matching the filter
func (uc *DispatchUC) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]*models.Reservation, error) {
	return uc.repo.ListReservations(ctx, filter)
}

// AssignDriver offers the reservation to the chosen driver and notifies
// them of the new request
func (uc *DispatchUC) AssignDriver(ctx context.Context, reservationID int64, driverID string) (*models.Reservation, error) {
	driver, err := uc.repo.GetDriverProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.AssignDriver(ctx, reservationID, driverID)
	if err != nil {
		return nil, err
	}

	name, phone, err := uc.requesterContact(ctx, updated)
	if err != nil {
		// Assignment already committed; the notification just loses
		// requester detail
		logger.Warn("Failed to resolve requester contact for assignment SMS",
			logger.Int64("reservation_id", reservationID), logger.Err(err))
	}

	uc.publishSMS(ctx, &models.SMSEvent{
		Kind:       models.SMSDriverRequest,
		To:         driver.User.Phone,
		Name:       name,
		Phone:      phone,
		Pickup:     updated.PickupAddress.String(),
		Drop:       updated.DropAddress.String(),
		PickupDate: updated.PickupAt.Format("2006-01-02"),
		PickupTime: updated.PickupAt.Format("15:04"),
	})

	logger.Info("Driver assigned",
		logger.Int64("reservation_id", reservationID),
		logger.String("driver_id", driverID))
	return updated, nil
}

// Accept records the assigned driver's acceptance and notifies the
// requester with the driver's contact and vehicle details
func (uc *DispatchUC) Accept(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	updated, err := uc.repo.MarkAccepted(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	driver, err := uc.repo.GetDriverProfile(ctx, *updated.DriverID)
	if err != nil {
		return nil, err
	}

	_, phone, err := uc.requesterContact(ctx, updated)
	if err != nil {
		logger.Warn("Failed to resolve requester contact for acceptance SMS",
			logger.Int64("reservation_id", reservationID), logger.Err(err))
	}

	uc.publishSMS(ctx, &models.SMSEvent{
		Kind:        models.SMSAccepted,
		To:          phone,
		Name:        driver.User.FullName(),
		Pickup:      updated.PickupAddress.String(),
		Drop:        updated.DropAddress.String(),
		PickupDate:  updated.PickupAt.Format("2006-01-02"),
		PickupTime:  updated.PickupAt.Format("15:04"),
		DriverPhone: driver.User.Phone,
		Brand:       driver.Vehicle.Brand,
		VehicleType: driver.VehicleType.Type,
		Seats:       driver.Vehicle.Seats,
	})

	logger.Info("Reservation accepted", logger.Int64("reservation_id", reservationID))
	return updated, nil
}

// Reject records the driver's rejection, clears the assignment and
// tells the requester to pick another driver. The rejection SMS names
// the driver but never includes their contact details.
func (uc *DispatchUC) Reject(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	prior, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	driverName := ""
	if prior.DriverID != nil {
		if driver, err := uc.repo.GetUser(ctx, *prior.DriverID); err == nil {
			driverName = driver.FullName()
		}
	}

	updated, err := uc.repo.MarkRejected(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	_, phone, err := uc.requesterContact(ctx, updated)
	if err != nil {
		logger.Warn("Failed to resolve requester contact for rejection SMS",
			logger.Int64("reservation_id", reservationID), logger.Err(err))
	}

	uc.publishSMS(ctx, &models.SMSEvent{
		Kind:       models.SMSRejected,
		To:         phone,
		Name:       driverName,
		Pickup:     updated.PickupAddress.String(),
		Drop:       updated.DropAddress.String(),
		PickupDate: updated.PickupAt.Format("2006-01-02"),
		PickupTime: updated.PickupAt.Format("15:04"),
	})

	logger.Info("Reservation rejected", logger.Int64("reservation_id", reservationID))
	return updated, nil
}

// EndTrip finalizes the trip charge, folding accrued waiting time into
// it, and notifies the requester of the total
func (uc *DispatchUC) EndTrip(ctx context.Context, reservationID int64) (*models.Reservation, error) {
	updated, err := uc.repo.EndTrip(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	_, phone, err := uc.requesterContact(ctx, updated)
	if err != nil {
		logger.Warn("Failed to resolve requester contact for trip-end SMS",
			logger.Int64("reservation_id", reservationID), logger.Err(err))
	}

	uc.publishSMS(ctx, &models.SMSEvent{
		Kind:        models.SMSTripEnded,
		To:          phone,
		Drop:        updated.DropAddress.String(),
		ChargeCents: updated.ChargeCents,
	})

	logger.Info("Trip ended",
		logger.Int64("reservation_id", reservationID),
		logger.String("final_charge_cad", models.FormatCAD(updated.ChargeCents)))
	return updated, nil
}

// RecordFeedback stores the passenger's rating and closes the
// reservation lifecycle
func (uc *DispatchUC) RecordFeedback(ctx context.Context, reservationID int64, rating int, comment string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, dispatch.ErrInvalidRating
	}

	fb, err := uc.repo.CreateFeedback(ctx, reservationID, rating, comment)
	if err != nil {
		return nil, err
	}

	logger.Info("Feedback recorded",
		logger.Int64("reservation_id", reservationID),
		logger.Int("rating", rating))
	return fb, nil
}

// RemoveDriverAccount detaches a removed driver from all reservations
// and takes them out of the online pool. Reservation statuses are left
// as-is.
func (uc *DispatchUC) RemoveDriverAccount(ctx context.Context, driverID string) error {
	cleared, err := uc.repo.ClearDriverAssignments(ctx, driverID)
	if err != nil {
		return err
	}

	if err := uc.poolGW.RemoveDriver(ctx, driverID); err != nil {
		logger.Warn("Failed to remove driver from online pool",
			logger.String("driver_id", driverID), logger.Err(err))
	}

	logger.Info("Driver account removed from dispatch",
		logger.String("driver_id", driverID),
		logger.Int64("reservations_cleared", cleared))
	return nil
}

// requesterContact resolves the name and phone of whoever made the
// booking: the passenger account, or the raw fields an operator entered
func (uc *DispatchUC) requesterContact(ctx context.Context, reservation *models.Reservation) (string, string, error) {
	if reservation.ByPassenger() {
		passenger, err := uc.repo.GetUser(ctx, *reservation.PassengerID)
		if err != nil {
			return "", "", err
		}
		return passenger.FullName(), passenger.Phone, nil
	}

	name := ""
	if reservation.FirstName != nil && reservation.LastName != nil {
		name = *reservation.FirstName + " " + *reservation.LastName
	}
	phone := ""
	if reservation.Phone != nil {
		phone = *reservation.Phone
	}
	return name, phone, nil
}

// publishSMS sends a notification event, swallowing failures: delivery
// problems never surface into the state transition that triggered them
func (uc *DispatchUC) publishSMS(ctx context.Context, event *models.SMSEvent) {
	event.ID = uuid.New().String()
	event.Timestamp = time.Now().UTC()

	if err := uc.notifyGW.PublishSMS(ctx, event); err != nil {
		logger.Warn("Failed to publish SMS event",
			logger.String("kind", string(event.Kind)), logger.Err(err))
	}
}
