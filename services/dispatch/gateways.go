package dispatch

import (
	"context"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// NotifyGW publishes fire-and-forget SMS events. Publish failures are
// the caller's to log and swallow; they must never roll back or block
// the state transition that produced the event.
type NotifyGW interface {
	PublishSMS(ctx context.Context, event *models.SMSEvent) error
}

// DriverPoolGW removes a driver from the online pool mirror when their
// account is torn down
type DriverPoolGW interface {
	RemoveDriver(ctx context.Context, driverID string) error
}
