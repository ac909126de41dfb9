package waittime

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrTimerNotFound is returned when the reservation has no timer record
	ErrTimerNotFound = errors.New("waiting timer not found")
	// ErrTimerNotRunning is returned on an attempt to stop a timer that
	// was never started or is already stopped
	ErrTimerNotRunning = errors.New("waiting timer is not running")
)
