package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

// Provider sends a rendered SMS to a recipient
type Provider interface {
	Send(ctx context.Context, to, body string) error
}

// HTTPProvider delivers messages through a JSON SMS gateway
type HTTPProvider struct {
	cfg    models.SMSConfig
	client *http.Client
}

// NewHTTPProvider creates a new HTTP SMS provider
func NewHTTPProvider(cfg models.SMSConfig) *HTTPProvider {
	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send posts the message to the configured gateway. Recipient numbers
// arrive without a country prefix and get the configured one prepended.
func (p *HTTPProvider) Send(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(sendRequest{
		From: p.cfg.FromNumber,
		To:   p.cfg.CountryCode + to,
		Body: body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ProviderURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sms provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}
	return nil
}
