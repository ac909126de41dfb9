package models

import "time"

// User represents a registered passenger, driver or operator.
// Only the fields the dispatch core reads are modeled; account
// administration is owned by an external CRUD service.
type User struct {
	ID        string `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	UserType  string `json:"user_type" db:"user_type"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DriverAvailability is the single live online/offline record per driver
type DriverAvailability struct {
	DriverID  string    `json:"driver_id" db:"driver_id"`
	Status    bool      `json:"status" db:"status"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DriverStatusCount accumulates online/offline toggle counts for one
// driver on one calendar day. Used for reporting only.
type DriverStatusCount struct {
	DriverID     string    `json:"driver_id" db:"driver_id"`
	Date         time.Time `json:"date" db:"date"`
	OnlineCount  int       `json:"online_count" db:"online_count"`
	OfflineCount int       `json:"offline_count" db:"offline_count"`
}

// DriverLocation is a driver's last known position, owned by the
// external location CRUD and read-only here
type DriverLocation struct {
	DriverID  string  `json:"driver_id" db:"driver_id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Route     string  `json:"route" db:"route"`
	City      string  `json:"city" db:"city"`
}

// DriverVehicle is a driver's registered vehicle
type DriverVehicle struct {
	DriverID      string `json:"driver_id" db:"driver_id"`
	Brand         string `json:"brand" db:"brand"`
	Seats         int    `json:"seats" db:"seats"`
	VehicleTypeID int64  `json:"vehicle_type_id" db:"vehicle_type_id"`
}

// VehicleType is a bookable vehicle category with its per-unit rate
type VehicleType struct {
	ID        int64  `json:"id" db:"id"`
	Type      string `json:"type" db:"type"`
	RateCents int64  `json:"rate_cents" db:"rate_cents"`
}

// DriverProfile bundles the reference data the dispatcher needs about
// an assigned driver when notifying the requester
type DriverProfile struct {
	User        User
	Vehicle     DriverVehicle
	VehicleType VehicleType
}
