package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nyctaxi/dispatch/internal/pkg/constants"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	natspkg "github.com/nyctaxi/dispatch/internal/pkg/nats"
)

// NotifyGW publishes SMS events over NATS
type NotifyGW struct {
	natsClient *natspkg.Client
}

// NewNotifyGW creates a new notification gateway
func NewNotifyGW(natsClient *natspkg.Client) *NotifyGW {
	return &NotifyGW{natsClient: natsClient}
}

// PublishSMS publishes an SMS event to the notify workers. The caller
// treats failures as fire-and-forget.
func (g *NotifyGW) PublishSMS(ctx context.Context, event *models.SMSEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal SMS event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectNotifySMS, data)
}
