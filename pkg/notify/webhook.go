package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"watchpost.dev/monitor-status-service/pkg/models"
)

// webhookPayload is the message contract a generic webhook consumer
// receives per channel delivery.
type webhookPayload struct {
	ChannelID    string `json:"channelId"`
	MonitorID    string `json:"monitorId"`
	NewStatus    string `json:"newStatus"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	StatusCode   int    `json:"statusCode,omitempty"`
}

type WebhookDeliverer struct {
	HTTP *http.Client
}

func NewWebhookDeliverer() *WebhookDeliverer {
	return &WebhookDeliverer{
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebhookDeliverer) Deliver(ctx context.Context, channel models.NotificationChannel, ev models.AlertEvent) error {
	decoded, err := DecodeChannelOptions(channel)
	if err != nil {
		return err
	}
	opts, ok := decoded.(WebhookOptions)
	if !ok {
		return fmt.Errorf("channel %s is not a webhook channel", channel.ID)
	}

	payload := webhookPayload{
		ChannelID:    channel.ID,
		MonitorID:    ev.MonitorID,
		NewStatus:    string(ev.NewStatus),
		Name:         ev.MonitorName,
		URL:          ev.MonitorURL,
		ErrorMessage: ev.ErrorMessage,
		StatusCode:   ev.StatusCode,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	res, err := w.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	resp, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	if res.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d: %s", res.StatusCode, string(resp))
	}
	return nil
}
