package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveline/internal/config"
	"driveline/internal/constants"
	"driveline/pkg/errors"
)

func testFields() Fields {
	return Fields{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Vehicle: "2019 Toyota Land Cruiser",
		Country: "Kenya",
		Message: "Need shipping quote.",
	}
}

func TestResendClientSend(t *testing.T) {
	var got resendPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "msg_abc123"})
	}))
	defer srv.Close()

	client := NewResendClient(config.MailerConfig{
		APIKey:   "re_test_key",
		From:     "Driveline Exports <inquiries@drivelineexports.com>",
		Endpoint: srv.URL,
	})

	id, err := client.Send(context.Background(), testFields())
	require.NoError(t, err)
	assert.Equal(t, "msg_abc123", id)

	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "Driveline Exports <inquiries@drivelineexports.com>", got.From)
	assert.Equal(t, constants.OperatorRecipients, got.To)
	assert.Equal(t, "jane@example.com", got.ReplyTo)
	assert.Equal(t, "New Export Inquiry - 2019 Toyota Land Cruiser", got.Subject)
	assert.Contains(t, got.HTML, "Jane Doe")
}

func TestResendClientProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := NewResendClient(config.MailerConfig{APIKey: "re_test_key", Endpoint: srv.URL})

	_, err := client.Send(context.Background(), testFields())
	require.Error(t, err)
	assert.True(t, errors.IsProvider(err))
}

func TestResendClientNotConfigured(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewResendClient(config.MailerConfig{Endpoint: srv.URL})
	assert.False(t, client.Configured())

	_, err := client.Send(context.Background(), testFields())
	require.Error(t, err)
	assert.True(t, errors.IsNotConfigured(err))
	assert.Equal(t, 0, calls, "no request may reach the provider without credentials")
}

func TestResendClientDefaults(t *testing.T) {
	client := NewResendClient(config.MailerConfig{APIKey: "re_test_key"})
	assert.Equal(t, constants.DefaultMailFrom, client.from)
	assert.Equal(t, constants.DefaultMailEndpoint, client.endpoint)
	assert.Equal(t, constants.DefaultHTTPTimeout, client.client.Timeout)
}
