package models

import "time"

// SMSKind identifies which notification template an event renders
type SMSKind string

const (
	SMSDriverRequest SMSKind = "DRIVER_REQUEST"
	SMSAccepted      SMSKind = "ACCEPTED"
	SMSRejected      SMSKind = "REJECTED"
	SMSTripEnded     SMSKind = "TRIP_ENDED"
)

// SMSEvent is a fire-and-forget notification published by the dispatch
// service and consumed by the notify worker. Delivery failures never
// propagate back into the state transition that produced the event.
type SMSEvent struct {
	ID        string    `json:"id"`
	Kind      SMSKind   `json:"kind"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`

	// Template fields, populated per kind
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Pickup      string `json:"pickup,omitempty"`
	Drop        string `json:"drop,omitempty"`
	PickupDate  string `json:"pickup_date,omitempty"`
	PickupTime  string `json:"pickup_time,omitempty"`
	DriverPhone string `json:"driver_phone,omitempty"`
	Brand       string `json:"brand,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	Seats       int    `json:"seats,omitempty"`
	ChargeCents int64  `json:"charge_cents,omitempty"`
}
