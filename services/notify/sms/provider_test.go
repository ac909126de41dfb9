package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
)

func TestHTTPProvider_Send(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	provider := NewHTTPProvider(models.SMSConfig{
		ProviderURL: server.URL,
		APIKey:      "test-key",
		FromNumber:  "+15550100",
		CountryCode: "+1",
	})

	err := provider.Send(context.Background(), "4165550002", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "+15550100", got.From)
	assert.Equal(t, "+14165550002", got.To)
	assert.Equal(t, "hello", got.Body)
}

func TestHTTPProvider_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewHTTPProvider(models.SMSConfig{ProviderURL: server.URL, CountryCode: "+1"})

	err := provider.Send(context.Background(), "4165550002", "hello")
	assert.ErrorContains(t, err, "status 502")
}
