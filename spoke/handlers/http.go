// Package handlers contains the spoke agent's HTTP and websocket handlers.
package handlers

import (
	"net/http"

	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	status     interfaces.StatusProvider
	telemetry  interfaces.TelemetrySource
	dispatcher interfaces.CommandDispatcher
	reader     interfaces.LogReader
	streamer   interfaces.LogStreamer
	upgrader   websocket.Upgrader
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(
	status interfaces.StatusProvider,
	telemetry interfaces.TelemetrySource,
	dispatcher interfaces.CommandDispatcher,
	reader interfaces.LogReader,
	streamer interfaces.LogStreamer,
	logger log.Logger,
) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		status:     helpers.NilPanic(status, "handlers.http.go: status is required"),
		telemetry:  helpers.NilPanic(telemetry, "handlers.http.go: telemetry is required"),
		dispatcher: helpers.NilPanic(dispatcher, "handlers.http.go: dispatcher is required"),
		reader:     helpers.NilPanic(reader, "handlers.http.go: reader is required"),
		streamer:   helpers.NilPanic(streamer, "handlers.http.go: streamer is required"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// GetStatus (GET /status) always answers 200 so the hub can tell a reachable
// spoke with a broken scan from an unreachable one.
func (h *HTTPServer) GetStatus(ectx echo.Context) error {
	report, err := h.status.Status(ectx.Request().Context())
	if err != nil {
		level.Error(h.logger).Log("msg", "status pass failed", "err", err)
		return ectx.JSON(http.StatusOK, StatusResponse{Status: "error", Message: err.Error()})
	}
	return ectx.JSON(http.StatusOK, toStatusResponse(report))
}

// GetTelemetry (GET /telemetry) returns CPU, RAM and disk usage in percent.
func (h *HTTPServer) GetTelemetry(ectx echo.Context) error {
	t, err := h.telemetry.Telemetry(ectx.Request().Context())
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toTelemetryResponse(t))
}

// RunCommand (POST /command/{script}/{action}) launches the action and returns
// without waiting for it.
func (h *HTTPServer) RunCommand(ectx echo.Context, script string, action string, params RunCommandParams) error {
	result, err := h.dispatcher.Dispatch(ectx.Request().Context(), domain.CommandRequest{
		Script: script,
		Action: action,
		User:   helpers.Value(params.User),
	})
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toCommandResponse(result))
}

// GetLogs (GET /logs/{script}) returns the last lines of the script's console log.
func (h *HTTPServer) GetLogs(ectx echo.Context, script string, params GetLogsParams) error {
	lines := domain.DefaultLogLines
	if params.Lines != nil {
		lines = *params.Lines
	}
	tail, err := h.reader.Read(ectx.Request().Context(), domain.LogRequest{
		Script: script,
		User:   helpers.Value(params.User),
		Lines:  lines,
	})
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toLogsResponse(tail))
}
