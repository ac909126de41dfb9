package handler

import (
	"context"
	"encoding/json"
	"time"

	natsgo "github.com/nats-io/nats.go"

	"github.com/nyctaxi/dispatch/internal/pkg/constants"
	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/internal/pkg/nats"
	"github.com/nyctaxi/dispatch/services/notify/sms"
)

// SMSConsumer consumes SMS events off NATS and delivers them through
// the configured provider. Every failure is logged and swallowed:
// notifications are fire-and-forget end to end.
type SMSConsumer struct {
	natsClient *nats.Client
	provider   sms.Provider
	sub        *natsgo.Subscription
}

// NewSMSConsumer creates a new SMS consumer
func NewSMSConsumer(natsClient *nats.Client, provider sms.Provider) *SMSConsumer {
	return &SMSConsumer{
		natsClient: natsClient,
		provider:   provider,
	}
}

// Start joins the notify queue group and begins handling events
func (c *SMSConsumer) Start() error {
	sub, err := c.natsClient.QueueSubscribe(constants.SubjectNotifySMS, constants.QueueNotifySMS, c.handleMessage)
	if err != nil {
		return err
	}
	c.sub = sub

	logger.Info("SMS consumer started",
		logger.String("subject", constants.SubjectNotifySMS),
		logger.String("queue", constants.QueueNotifySMS))
	return nil
}

// Stop unsubscribes from the notify queue group
func (c *SMSConsumer) Stop() {
	if c.sub != nil {
		_ = c.sub.Unsubscribe()
	}
}

func (c *SMSConsumer) handleMessage(msg *natsgo.Msg) {
	var event models.SMSEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Dropping malformed SMS event", logger.Err(err))
		return
	}

	body := sms.RenderBody(&event)
	if body == "" {
		logger.Warn("Dropping SMS event with unknown kind",
			logger.String("event_id", event.ID),
			logger.String("kind", string(event.Kind)))
		return
	}
	if event.To == "" {
		logger.Warn("Dropping SMS event without recipient",
			logger.String("event_id", event.ID),
			logger.String("kind", string(event.Kind)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := c.provider.Send(ctx, event.To, body); err != nil {
		logger.Warn("Failed to deliver SMS",
			logger.String("event_id", event.ID),
			logger.String("kind", string(event.Kind)),
			logger.Err(err))
		return
	}

	logger.Info("SMS delivered",
		logger.String("event_id", event.ID),
		logger.String("kind", string(event.Kind)))
}
