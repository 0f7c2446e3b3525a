package notify

import (
	"encoding/json"
	"fmt"

	"watchpost.dev/monitor-status-service/pkg/models"
)

// Channel delivery options are kind-tagged variants, not an open map:
// decoding is exhaustive over kinds so a misconfigured channel fails at
// setup time instead of missing a field at delivery time.

type TelegramOptions struct {
	Token  string `json:"token"`
	ChatID string `json:"chat_id"`
}

type WebhookOptions struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func DecodeChannelOptions(channel models.NotificationChannel) (any, error) {
	switch channel.Kind {
	case models.ChannelKindTelegram:
		var opts TelegramOptions
		if err := json.Unmarshal([]byte(channel.Options), &opts); err != nil {
			return nil, fmt.Errorf("telegram options: %w", err)
		}
		if opts.Token == "" || opts.ChatID == "" {
			return nil, fmt.Errorf("telegram options: token and chat_id are required")
		}
		return opts, nil
	case models.ChannelKindWebhook:
		var opts WebhookOptions
		if err := json.Unmarshal([]byte(channel.Options), &opts); err != nil {
			return nil, fmt.Errorf("webhook options: %w", err)
		}
		if opts.URL == "" {
			return nil, fmt.Errorf("webhook options: url is required")
		}
		return opts, nil
	default:
		return nil, fmt.Errorf("unknown channel kind %q", channel.Kind)
	}
}
