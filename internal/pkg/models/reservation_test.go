package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_Offerable(t *testing.T) {
	assert.True(t, StatusNotAssigned.Offerable())
	assert.True(t, StatusAssigned.Offerable())
	assert.True(t, StatusRejected.Offerable())

	assert.False(t, StatusAccepted.Offerable())
	assert.False(t, StatusEnded.Offerable())
	assert.False(t, StatusEndedFeedbackLeft.Offerable())
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.True(t, StatusEndedFeedbackLeft.Terminal())

	assert.False(t, StatusNotAssigned.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.False(t, StatusEnded.Terminal())
}

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ReservationStatus("CANCELLED").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

func TestReservation_ByPassenger(t *testing.T) {
	passengerID := "passenger-1"
	empty := ""

	assert.True(t, (&Reservation{PassengerID: &passengerID}).ByPassenger())
	assert.False(t, (&Reservation{PassengerID: &empty}).ByPassenger())
	assert.False(t, (&Reservation{}).ByPassenger())
}

func TestAddress_String(t *testing.T) {
	a := Address{StreetNo: "12", Route: "King St", City: "Toronto", Province: "ON", ZipCode: "M5H 1A1"}
	assert.Equal(t, "12 King St Toronto ON M5H 1A1", a.String())
}

func TestFormatCAD(t *testing.T) {
	assert.Equal(t, "10.50", FormatCAD(1050))
	assert.Equal(t, "30.00", FormatCAD(3000))
	assert.Equal(t, "0.05", FormatCAD(5))
	assert.Equal(t, "-2.50", FormatCAD(-250))
}

func TestWaitingTime_AccumulatedMinutes(t *testing.T) {
	assert.Equal(t, int64(0), (&WaitingTime{}).AccumulatedMinutes())

	seven := int64(7)
	assert.Equal(t, int64(7), (&WaitingTime{DurationMinutes: &seven}).AccumulatedMinutes())
}
