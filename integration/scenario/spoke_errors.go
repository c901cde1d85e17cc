package scenario

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

func init() {
	Register("spoke_errors", runSpokeErrors)
}

// runSpokeErrors checks authentication and parameter rejections on the agent API.
func runSpokeErrors(ctx context.Context, cfg *Config) error {
	checks := []struct {
		call     string
		method   string
		path     string
		key      string
		want     int
		wantCode string
	}{
		{call: "status without key", method: http.MethodGet, path: "/status", want: http.StatusUnauthorized, wantCode: "unauthorized"},
		{call: "status with wrong key", method: http.MethodGet, path: "/status", key: cfg.SpokeAPIKey + "-wrong", want: http.StatusUnauthorized, wantCode: "unauthorized"},
		{call: "unknown action", method: http.MethodPost, path: "/command/vhserver/explode", key: cfg.SpokeAPIKey, want: http.StatusBadRequest, wantCode: "bad_parameter"},
		{call: "lines below range", method: http.MethodGet, path: "/logs/vhserver?lines=0", key: cfg.SpokeAPIKey, want: http.StatusBadRequest, wantCode: "bad_parameter"},
		{call: "unknown script logs", method: http.MethodGet, path: "/logs/integration-missing-script", key: cfg.SpokeAPIKey, want: http.StatusNotFound, wantCode: "entity_not_found"},
	}
	for _, c := range checks {
		if err := Expect(ctx, c.call, c.method, cfg.SpokeURL+c.path, c.key, nil, nil, c.want, c.wantCode); err != nil {
			return err
		}
		fmt.Printf("%s: %d %s\n", c.call, c.want, c.wantCode)
	}

	wsURL := "ws" + strings.TrimPrefix(cfg.SpokeURL, "http") + "/logs/vhserver/stream"
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err == nil {
		conn.Close()
		return errors.New("stream without key: handshake succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("stream without key: %w", err)
	}
	resp.Body.Close()
	fmt.Println("stream without key: 401")
	return nil
}
