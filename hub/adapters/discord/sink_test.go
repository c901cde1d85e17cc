package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsWith(webhook string, err error) *mock.SettingsStoreMock {
	return &mock.SettingsStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			if key != domain.SettingDiscordWebhook {
				return "", apierr.NewEntityNotFoundError("setting not found", nil)
			}
			return webhook, err
		},
	}
}

func alert() domain.AlertEvent {
	s := domain.Spoke{ID: 1, Name: "box", IP: "10.0.0.5", Port: 49950}
	return domain.NewDegradedAlert(uuid.New(), s, 500, time.Time{})
}

type received struct {
	contentType string
	body        webhookMessage
}

func webhookServer(t *testing.T, code int) (*httptest.Server, chan received) {
	t.Helper()
	got := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var msg webhookMessage
		assert.NoError(t, json.Unmarshal(raw, &msg))
		got <- received{contentType: r.Header.Get("Content-Type"), body: msg}
		w.WriteHeader(code)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestSink_Send(t *testing.T) {
	t.Run("posts to the stored webhook", func(t *testing.T) {
		srv, got := webhookServer(t, http.StatusNoContent)
		s := NewSink(settingsWith(srv.URL, nil), "http://unused.invalid", srv.Client(), log.NewNopLogger())

		require.NoError(t, s.Send(context.Background(), alert()))
		r := <-got
		assert.Equal(t, "application/json", r.contentType)
		assert.Equal(t, "⚠️ Spoke Alert: box (10.0.0.5) is unresponsive (HTTP 500)", r.body.Content)
	})

	t.Run("falls back when the setting is absent", func(t *testing.T) {
		srv, got := webhookServer(t, http.StatusOK)
		missing := settingsWith("", apierr.NewEntityNotFoundError("setting not found", nil))
		s := NewSink(missing, srv.URL, srv.Client(), log.NewNopLogger())

		require.NoError(t, s.Send(context.Background(), alert()))
		assert.NotEmpty(t, (<-got).body.Content)
	})

	t.Run("falls back when the setting is empty", func(t *testing.T) {
		srv, got := webhookServer(t, http.StatusOK)
		s := NewSink(settingsWith("", nil), srv.URL, srv.Client(), log.NewNopLogger())

		require.NoError(t, s.Send(context.Background(), alert()))
		assert.Len(t, got, 1)
	})

	t.Run("nothing configured drops the alert", func(t *testing.T) {
		missing := settingsWith("", apierr.NewEntityNotFoundError("setting not found", nil))
		s := NewSink(missing, "", http.DefaultClient, log.NewNopLogger())

		assert.NoError(t, s.Send(context.Background(), alert()))
	})

	t.Run("webhook rejects", func(t *testing.T) {
		srv, _ := webhookServer(t, http.StatusTooManyRequests)
		s := NewSink(settingsWith(srv.URL, nil), "", srv.Client(), log.NewNopLogger())

		err := s.Send(context.Background(), alert())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("settings store failure", func(t *testing.T) {
		s := NewSink(settingsWith("", assert.AnError), "http://fallback.invalid", http.DefaultClient, log.NewNopLogger())

		err := s.Send(context.Background(), alert())
		require.ErrorIs(t, err, assert.AnError)
	})
}
