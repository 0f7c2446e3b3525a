package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchpost.dev/monitor-status-service/pkg/models"
	_ "watchpost.dev/monitor-status-service/pkg/testing"
)

func TestTelegramDelivererSendsMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewTelegramDeliverer()
	d.APIBase = srv.URL

	err := d.Deliver(context.Background(), models.NotificationChannel{
		ID:      "ch-1",
		Kind:    models.ChannelKindTelegram,
		Options: `{"token":"123:abc","chat_id":"42"}`,
	}, testEvent())
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "42", gotBody["chat_id"])
	assert.Contains(t, gotBody["text"], "api is down (was up)")
	assert.Contains(t, gotBody["text"], "status code 503")
	assert.Contains(t, gotBody["text"], "https://example.com")
}

func TestTelegramDelivererNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	d := NewTelegramDeliverer()
	d.APIBase = srv.URL

	err := d.Deliver(context.Background(), models.NotificationChannel{
		Kind:    models.ChannelKindTelegram,
		Options: `{"token":"123:abc","chat_id":"42"}`,
	}, testEvent())
	assert.Error(t, err)
}

func TestTelegramDelivererBadOptions(t *testing.T) {
	d := NewTelegramDeliverer()

	err := d.Deliver(context.Background(), models.NotificationChannel{
		Kind:    models.ChannelKindTelegram,
		Options: `{"token":"123:abc"}`,
	}, testEvent())
	assert.Error(t, err)
}

func TestWebhookDelivererPayloadContract(t *testing.T) {
	var gotHeaders http.Header
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ev := testEvent()
	ev.ErrorMessage = "connection refused"

	d := NewWebhookDeliverer()
	err := d.Deliver(context.Background(), models.NotificationChannel{
		ID:      "ch-1",
		Kind:    models.ChannelKindWebhook,
		Options: `{"url":"` + srv.URL + `","headers":{"X-Token":"secret"}}`,
	}, ev)
	require.NoError(t, err)

	assert.Equal(t, "ch-1", got["channelId"])
	assert.Equal(t, "mon-1", got["monitorId"])
	assert.Equal(t, "down", got["newStatus"])
	assert.Equal(t, "api", got["name"])
	assert.Equal(t, "https://example.com", got["url"])
	assert.Equal(t, "connection refused", got["errorMessage"])
	assert.Equal(t, float64(503), got["statusCode"])

	assert.Equal(t, "secret", gotHeaders.Get("X-Token"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
}

func TestWebhookDelivererOmitsEmptyOptionalFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
	}))
	defer srv.Close()

	ev := testEvent()
	ev.StatusCode = 0
	ev.ErrorMessage = ""

	d := NewWebhookDeliverer()
	require.NoError(t, d.Deliver(context.Background(), models.NotificationChannel{
		Kind:    models.ChannelKindWebhook,
		Options: `{"url":"` + srv.URL + `"}`,
	}, ev))

	_, hasErr := got["errorMessage"]
	_, hasCode := got["statusCode"]
	assert.False(t, hasErr)
	assert.False(t, hasCode)
}

func TestWebhookDelivererNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewWebhookDeliverer()
	err := d.Deliver(context.Background(), models.NotificationChannel{
		Kind:    models.ChannelKindWebhook,
		Options: `{"url":"` + srv.URL + `"}`,
	}, testEvent())
	assert.Error(t, err)
}
