package match

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation being
	// matched does not exist
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrReservationNotOfferable is returned when a candidate search is
	// requested for a reservation already past the offer stage
	ErrReservationNotOfferable = errors.New("reservation is not open for driver offers")
)
