package sms

import (
	"fmt"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// RenderBody builds the SMS text for a notification event. Unknown
// kinds render empty, which the consumer drops.
func RenderBody(event *models.SMSEvent) string {
	switch event.Kind {
	case models.SMSDriverRequest:
		return fmt.Sprintf("(Free)\n\n"+
			"Congratulations! You have received a reservation request from,\n\n"+
			"Passenger - %s\n"+
			"Phone - %s\n\n"+
			"Pick-Up - %s\n"+
			"Destination - %s\n"+
			"At - %s %s",
			event.Name, event.Phone, event.Pickup, event.Drop,
			event.PickupTime, event.PickupDate)
	case models.SMSAccepted:
		return fmt.Sprintf("(Free)\n\n"+
			"Congratulations! The driver has accepted your reservation request for,\n\n"+
			"Pick-Up - %s\n"+
			"Destination - %s\n"+
			"At - %s %s\n\n"+
			"Driver - %s\n"+
			"Phone - %s\n"+
			"Vehicle - %s %s with %d seats",
			event.Pickup, event.Drop, event.PickupTime, event.PickupDate,
			event.Name, event.DriverPhone, event.Brand, event.VehicleType, event.Seats)
	case models.SMSRejected:
		return fmt.Sprintf("(Free)\n\n"+
			"Sorry, the driver has rejected your reservation request for,\n\n"+
			"Pick-Up - %s\n"+
			"Destination - %s\n"+
			"At - %s %s\n\n"+
			"Driver - %s\n\n"+
			"Please select another driver from the system.",
			event.Pickup, event.Drop, event.PickupTime, event.PickupDate,
			event.Name)
	case models.SMSTripEnded:
		return fmt.Sprintf("(Free)\n\n"+
			"Congratulations! You have successfully ended your trip to,\n\n"+
			"Destination - %s\n"+
			"At - %s\n\n"+
			"Your trip charge is (CAD) - %s\n\n"+
			"Thank you for using NYC Taxi.",
			event.Drop, event.Timestamp.Format("2006-01-02 15:04:05"),
			models.FormatCAD(event.ChargeCents))
	default:
		return ""
	}
}
