package handlers

import (
	"context"
	"sync"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"

	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const streamWriteTimeout = 10 * time.Second

// StreamLogs (GET /logs/{script}/stream) upgrades to a websocket and sends one
// text frame per log line until the client goes away.
//
// Errors found before streaming are sent as a single text frame followed by a
// close frame, since the upgrade has already happened.
func (h *HTTPServer) StreamLogs(ectx echo.Context, script string, params StreamLogsParams) error {
	conn, err := h.upgrader.Upgrade(ectx.Response(), ectx.Request(), nil)
	if err != nil {
		level.Warn(h.logger).Log("msg", "websocket upgrade failed", "script", script, "err", err)
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ectx.Request().Context())
	defer cancel()

	// Incoming frames are discarded; a read error means the peer is gone.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var mu sync.Mutex
	send := func(line string) error {
		mu.Lock()
		defer mu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		return conn.WriteMessage(websocket.TextMessage, []byte(line))
	}

	req := domain.LogRequest{
		Script: script,
		User:   helpers.Value(params.User),
		Lines:  helpers.Value(params.Lines),
	}
	level.Info(h.logger).Log("msg", "log stream opened", "script", script, "user", req.User, "remote", ectx.RealIP())
	err = h.streamer.Stream(ctx, req, send)

	closeCode, reason := websocket.CloseNormalClosure, ""
	if err != nil {
		level.Warn(h.logger).Log("msg", "log stream failed", "script", script, "err", err)
		myErr := apierr.NewInternalServerError("log stream failed", err)
		_ = send(myErr.Message)
		closeCode, reason = closeCodeFor(err), myErr.Code
	}
	mu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(closeCode, reason), time.Now().Add(time.Second))
	mu.Unlock()
	level.Info(h.logger).Log("msg", "log stream closed", "script", script)
	return nil
}

func closeCodeFor(err error) int {
	switch {
	case apierr.IsBadParameterError(err), apierr.IsEntityNotFoundError(err), apierr.IsPrivilegeUnavailableError(err):
		return websocket.ClosePolicyViolation
	default:
		return websocket.CloseInternalServerErr
	}
}
