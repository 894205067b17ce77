package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:       srv.URL + "/",
		APIToken:      "test-token",
		PhoneNumberID: "12345",
		Timeout:       2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestSend_BuildsTemplatePayload(t *testing.T) {
	var got messageRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	})

	err := client.Send(context.Background(), "+919876543210", "inbound-transaction", []string{"Asha", "10-03-2025", "500.00"})
	require.NoError(t, err)

	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "individual", got.RecipientType)
	assert.Equal(t, "+919876543210", got.To)
	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "inbound-transaction", got.Template.Name)
	assert.Equal(t, "en", got.Template.Language.Code)
	require.Len(t, got.Template.Components, 1)
	assert.Equal(t, "body", got.Template.Components[0].Type)
	assert.Equal(t, []textParameter{
		{Type: "text", Text: "Asha"},
		{Type: "text", Text: "10-03-2025"},
		{Type: "text", Text: "500.00"},
	}, got.Template.Components[0].Parameters)
}

func TestSend_Non2xxIsNotificationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Template name does not exist","type":"OAuthException","code":132001}}`))
	})

	err := client.Send(context.Background(), "+919876543210", "missing-template", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotification)

	var nerr *NotificationError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, http.StatusBadRequest, nerr.StatusCode)
	assert.Equal(t, 132001, nerr.APICode)
	assert.Equal(t, "Template name does not exist", nerr.APIMessage)
}

func TestSend_TimeoutIsNotificationError(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	// registered after newTestClient so it runs before the server is closed
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Send(ctx, "+919876543210", "inbound-transaction", []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotification)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{PhoneNumberID: "1"})
	assert.Error(t, err)

	_, err = NewClient(Config{APIToken: "t"})
	assert.Error(t, err)
}

func TestNoopSender_AlwaysFails(t *testing.T) {
	err := NoopSender{}.Send(context.Background(), "+919876543210", "inbound-transaction", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotification)
}
