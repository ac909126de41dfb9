package dispatch

import "errors"

var (
	// ErrReservationNotFound is returned when a reservation ID resolves to nothing
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrDriverNotFound is returned when a driver ID resolves to nothing
	ErrDriverNotFound = errors.New("driver not found")

	// ErrUserNotFound is returned when a requester lookup fails
	ErrUserNotFound = errors.New("user not found")

	// ErrVehicleTypeNotFound is returned when a vehicle type ID resolves to nothing
	ErrVehicleTypeNotFound = errors.New("vehicle type not found")

	// ErrInvalidTransition is returned when an operation is attempted
	// from a reservation state that does not permit it. No mutation is
	// performed.
	ErrInvalidTransition = errors.New("reservation status does not permit this operation")

	// ErrOperatorDetailsRequired is returned when an operator books on
	// behalf of a customer without supplying name and phone
	ErrOperatorDetailsRequired = errors.New("first name, last name and phone are required for operator bookings")

	// ErrFeedbackExists is returned when a reservation already carries feedback
	ErrFeedbackExists = errors.New("feedback already recorded for this reservation")

	// ErrFeedbackNotAllowed is returned when feedback is submitted for a
	// reservation without an assigned driver or a registered passenger
	ErrFeedbackNotAllowed = errors.New("reservation is not eligible for feedback")

	// ErrInvalidRating is returned when a feedback rating is outside 0-5
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)
