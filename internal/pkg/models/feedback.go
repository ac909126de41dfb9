package models

import "time"

// Feedback is a passenger's post-trip rating of their driver
type Feedback struct {
	ID            int64     `json:"feedback_id" db:"id"`
	ReservationID int64     `json:"reservation_id" db:"reservation_id"`
	DriverID      string    `json:"driver_id" db:"driver_id"`
	PassengerID   string    `json:"passenger_id" db:"passenger_id"`
	Rating        int       `json:"rating" db:"rating"`
	Comment       string    `json:"comment" db:"comment"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
