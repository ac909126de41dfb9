package models

import (
	"fmt"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusNotAssigned       ReservationStatus = "NOT_ASSIGNED"
	StatusAssigned          ReservationStatus = "ASSIGNED"
	StatusAccepted          ReservationStatus = "ACCEPTED"
	StatusRejected          ReservationStatus = "REJECTED"
	StatusEnded             ReservationStatus = "ENDED"
	StatusEndedFeedbackLeft ReservationStatus = "ENDED_FEEDBACK_LEFT"
)

// Valid reports whether s is a known reservation status
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusNotAssigned, StatusAssigned, StatusAccepted,
		StatusRejected, StatusEnded, StatusEndedFeedbackLeft:
		return true
	}
	return false
}

// Offerable reports whether a driver can be offered (or re-offered) the
// reservation in this state. Rejected reservations re-enter the offer
// cycle when the requester picks another driver.
func (s ReservationStatus) Offerable() bool {
	return s == StatusNotAssigned || s == StatusAssigned || s == StatusRejected
}

// Terminal reports whether no further transition is possible
func (s ReservationStatus) Terminal() bool {
	return s == StatusEndedFeedbackLeft
}

// Address is a structured street address
type Address struct {
	StreetNo string `json:"street_no" db:"street_no"`
	Route    string `json:"route" db:"route"`
	City     string `json:"city" db:"city"`
	Province string `json:"province" db:"province"`
	ZipCode  string `json:"zip_code" db:"zip_code"`
}

// String renders the address the way it appears in SMS notifications
func (a Address) String() string {
	return fmt.Sprintf("%s %s %s %s %s", a.StreetNo, a.Route, a.City, a.Province, a.ZipCode)
}

// Reservation represents a taxi reservation
//
// A reservation is made either by a passenger directly (PassengerID set)
// or by an operator on a walk-in customer's behalf (raw FirstName,
// LastName and Phone set instead).
type Reservation struct {
	ID            int64             `json:"reservation_id" db:"id"`
	PassengerID   *string           `json:"passenger_id,omitempty" db:"passenger_id"`
	FirstName     *string           `json:"first_name,omitempty" db:"first_name"`
	LastName      *string           `json:"last_name,omitempty" db:"last_name"`
	Phone         *string           `json:"phone,omitempty" db:"phone"`
	PickupLat     float64           `json:"pickup_lat" db:"pickup_lat"`
	PickupLng     float64           `json:"pickup_lng" db:"pickup_lng"`
	PickupAddress Address           `json:"pickup_address"`
	DropAddress   Address           `json:"drop_address"`
	VehicleTypeID int64             `json:"vehicle_type_id" db:"vehicle_type_id"`
	DriverID      *string           `json:"driver_id,omitempty" db:"driver_id"`
	Status        ReservationStatus `json:"status" db:"status"`
	ChargeCents   int64             `json:"charge_cents" db:"charge_cents"`
	PickupAt      time.Time         `json:"pickup_at" db:"pickup_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// ByPassenger reports whether the reservation was made by a registered
// passenger rather than an operator on someone's behalf
func (r *Reservation) ByPassenger() bool {
	return r.PassengerID != nil && *r.PassengerID != ""
}

// ReservationFilter narrows reservation listings
type ReservationFilter struct {
	PassengerID string
	DriverID    string
	Status      ReservationStatus
}

// FormatCAD renders a cent amount as a CAD decimal string, e.g. 1050 -> "10.50"
func FormatCAD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
