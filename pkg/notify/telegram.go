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

const telegramAPIBase = "https://api.telegram.org"

type TelegramDeliverer struct {
	HTTP *http.Client
	// APIBase is overridable for tests.
	APIBase string
}

func NewTelegramDeliverer() *TelegramDeliverer {
	return &TelegramDeliverer{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIBase: telegramAPIBase,
	}
}

func (t *TelegramDeliverer) Deliver(ctx context.Context, channel models.NotificationChannel, ev models.AlertEvent) error {
	decoded, err := DecodeChannelOptions(channel)
	if err != nil {
		return err
	}
	opts, ok := decoded.(TelegramOptions)
	if !ok {
		return fmt.Errorf("channel %s is not a telegram channel", channel.ID)
	}

	msg := fmt.Sprintf("%s is %s (was %s)", ev.MonitorName, ev.NewStatus, ev.PrevStatus)
	if ev.StatusCode != 0 {
		msg = fmt.Sprintf("%s, status code %d", msg, ev.StatusCode)
	}
	if ev.ErrorMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, ev.ErrorMessage)
	}
	msg = fmt.Sprintf("%s\n%s", msg, ev.MonitorURL)

	payload := map[string]any{"chat_id": opts.ChatID, "text": msg, "disable_web_page_preview": true}
	b, _ := json.Marshal(payload)
	u := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, opts.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := t.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	resp, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	if res.StatusCode >= 300 {
		return fmt.Errorf("telegram status %d: %s", res.StatusCode, string(resp))
	}
	return nil
}
