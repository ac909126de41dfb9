package sms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

func TestRenderBody_DriverRequest(t *testing.T) {
	body := RenderBody(&models.SMSEvent{
		Kind:       models.SMSDriverRequest,
		Name:       "Pat Lau",
		Phone:      "4165550002",
		Pickup:     "12 King St Toronto ON M5H 1A1",
		Drop:       "300 Front St Toronto ON M5V 2T6",
		PickupDate: "2025-06-01",
		PickupTime: "14:30",
	})

	assert.Contains(t, body, "reservation request from")
	assert.Contains(t, body, "Passenger - Pat Lau")
	assert.Contains(t, body, "Phone - 4165550002")
	assert.Contains(t, body, "Pick-Up - 12 King St Toronto ON M5H 1A1")
	assert.Contains(t, body, "At - 14:30 2025-06-01")
}

func TestRenderBody_Accepted(t *testing.T) {
	body := RenderBody(&models.SMSEvent{
		Kind:        models.SMSAccepted,
		Name:        "Dana Reyes",
		DriverPhone: "4165550001",
		Brand:       "Toyota",
		VehicleType: "Sedan",
		Seats:       4,
		Pickup:      "12 King St",
		Drop:        "300 Front St",
	})

	assert.Contains(t, body, "driver has accepted your reservation")
	assert.Contains(t, body, "Driver - Dana Reyes")
	assert.Contains(t, body, "Phone - 4165550001")
	assert.Contains(t, body, "Vehicle - Toyota Sedan with 4 seats")
}

func TestRenderBody_Rejected(t *testing.T) {
	body := RenderBody(&models.SMSEvent{
		Kind: models.SMSRejected,
		Name: "Dana Reyes",
	})

	assert.Contains(t, body, "driver has rejected your reservation")
	assert.Contains(t, body, "Driver - Dana Reyes")
	assert.Contains(t, body, "Please select another driver from the system.")
	// Rejection never leaks the driver's phone number
	assert.NotContains(t, body, "Phone -")
}

func TestRenderBody_TripEnded(t *testing.T) {
	body := RenderBody(&models.SMSEvent{
		Kind:        models.SMSTripEnded,
		Drop:        "300 Front St",
		ChargeCents: 3000,
		Timestamp:   time.Date(2025, 6, 1, 15, 45, 0, 0, time.UTC),
	})

	assert.Contains(t, body, "successfully ended your trip")
	assert.Contains(t, body, "Your trip charge is (CAD) - 30.00")
	assert.Contains(t, body, "Thank you for using NYC Taxi.")
}

func TestRenderBody_UnknownKind(t *testing.T) {
	assert.Empty(t, RenderBody(&models.SMSEvent{Kind: "CARRIER_PIGEON"}))
}
