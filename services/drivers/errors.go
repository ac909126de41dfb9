package drivers

import "errors"

var (
	// ErrDriverNotFound is returned when no availability record exists
	// for the driver
	ErrDriverNotFound = errors.New("driver not found")
	// ErrLocationNotFound is returned when the driver has never reported
	// a position
	ErrLocationNotFound = errors.New("driver location not found")
)
