// Package discord posts hub alerts to a Discord webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const sendTimeout = 10 * time.Second

type webhookMessage struct {
	Content string `json:"content"`
}

type sink struct {
	settings interfaces.SettingsStore
	fallback string
	client   *http.Client
	logger   log.Logger
}

// NewSink creates an AlertSink that posts {"content": message} to the webhook
// stored under the discord_webhook setting, or to fallback when the setting is
// absent. With neither configured alerts are dropped.
func NewSink(settings interfaces.SettingsStore, fallback string, client *http.Client, logger log.Logger) interfaces.AlertSink {
	return &sink{
		settings: helpers.NilPanic(settings, "discord.sink.go: settings is required"),
		fallback: fallback,
		client:   helpers.NilPanic(client, "discord.sink.go: http client is required"),
		logger:   log.With(helpers.NilPanic(logger, "discord.sink.go: logger is required"), "component", "discord"),
	}
}

func (s *sink) Send(ctx context.Context, ev domain.AlertEvent) error {
	webhook, err := s.webhook(ctx)
	if err != nil {
		return err
	}
	if webhook == "" {
		level.Debug(s.logger).Log("msg", "no webhook configured, alert dropped", "alert_id", ev.ID)
		return nil
	}

	body, err := json.Marshal(webhookMessage{Content: ev.Message})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord webhook post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned %d", resp.StatusCode)
	}
	level.Debug(s.logger).Log("msg", "alert posted", "alert_id", ev.ID, "spoke", ev.SpokeName)
	return nil
}

func (s *sink) webhook(ctx context.Context) (string, error) {
	v, err := s.settings.Get(ctx, domain.SettingDiscordWebhook)
	switch {
	case err == nil && v != "":
		return v, nil
	case err == nil, apierr.IsEntityNotFoundError(err):
		return s.fallback, nil
	default:
		return "", fmt.Errorf("read discord webhook setting: %w", err)
	}
}
