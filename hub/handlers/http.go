// Package handlers contains the hub's HTTP handlers.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// DefaultProxyTimeout bounds one /proxy/status call to a spoke.
const DefaultProxyTimeout = 5 * time.Second

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	spokes       interfaces.SpokeStore
	settings     interfaces.SettingsStore
	probe        interfaces.SpokeProbe
	proxyTimeout time.Duration
	logger       log.Logger
}

// Option configures an HTTPServer.
type Option func(*HTTPServer)

// WithProxyTimeout sets how long the status proxy waits for a spoke.
func WithProxyTimeout(d time.Duration) Option {
	return func(h *HTTPServer) {
		if d > 0 {
			h.proxyTimeout = d
		}
	}
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(spokes interfaces.SpokeStore, settings interfaces.SettingsStore, probe interfaces.SpokeProbe, logger log.Logger, opts ...Option) *HTTPServer {
	h := &HTTPServer{
		spokes:       helpers.NilPanic(spokes, "handlers.http.go: spokes is required"),
		settings:     helpers.NilPanic(settings, "handlers.http.go: settings is required"),
		probe:        helpers.NilPanic(probe, "handlers.http.go: probe is required"),
		proxyTimeout: DefaultProxyTimeout,
		logger:       log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListSpokes (GET /spokes).
func (h *HTTPServer) ListSpokes(ectx echo.Context) error {
	spokes, err := h.spokes.List(ectx.Request().Context())
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toSpokesResponse(spokes))
}

// AddSpoke (POST /spokes) registers a spoke, or refreshes the one already at
// the same address. Returns 201 with the stored spoke.
func (h *HTTPServer) AddSpoke(ectx echo.Context) error {
	var req SpokeRequest
	if err := ectx.Bind(&req); err != nil {
		return apierr.NewBadParameterError("invalid request body", err)
	}
	spoke := fromSpokeRequest(req)
	if err := spoke.Validate(); err != nil {
		return err
	}

	stored, err := h.spokes.Add(ectx.Request().Context(), spoke)
	if err != nil {
		return err
	}
	level.Info(h.logger).Log("msg", "spoke registered", "id", stored.ID, "name", stored.Name, "ip", stored.IP, "port", stored.Port)
	return ectx.JSON(http.StatusCreated, toSpokeResponse(stored))
}

// GetSpoke (GET /spokes/{id}).
func (h *HTTPServer) GetSpoke(ectx echo.Context, id int64) error {
	spoke, err := h.spokes.Get(ectx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toSpokeResponse(spoke))
}

// DeleteSpoke (DELETE /spokes/{id}).
func (h *HTTPServer) DeleteSpoke(ectx echo.Context, id int64) error {
	if err := h.spokes.Delete(ectx.Request().Context(), id); err != nil {
		return err
	}
	level.Info(h.logger).Log("msg", "spoke removed", "id", id)
	return ectx.NoContent(http.StatusNoContent)
}

// GetSettings (GET /settings) returns every setting as a flat object.
func (h *HTTPServer) GetSettings(ectx echo.Context) error {
	all, err := h.settings.All(ectx.Request().Context())
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, all)
}

// UpdateSettings (POST /settings) upserts every key in a flat string object.
func (h *HTTPServer) UpdateSettings(ectx echo.Context) error {
	values := map[string]string{}
	if err := ectx.Bind(&values); err != nil {
		return apierr.NewBadParameterError("settings must be an object of strings", err)
	}
	for k := range values {
		if k == "" {
			return apierr.NewBadParameterError("setting key must not be empty", nil)
		}
	}
	if err := h.settings.Put(ectx.Request().Context(), values); err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, MessageResponse{Message: "Settings updated"})
}

// ProxyStatus (GET /proxy/status/{id}) relays the spoke's /status body. An
// unreachable spoke or a non-JSON answer yields {"status":"offline","error":...}.
func (h *HTTPServer) ProxyStatus(ectx echo.Context, id int64) error {
	ctx := ectx.Request().Context()
	spoke, err := h.spokes.Get(ctx, id)
	if err != nil {
		return err
	}

	probeCtx, cancel := context.WithTimeout(ctx, h.proxyTimeout)
	defer cancel()
	res, err := h.probe.Status(probeCtx, spoke)
	if err != nil {
		level.Warn(h.logger).Log("msg", "status proxy failed", "id", id, "spoke", spoke.Name, "err", err)
		return ectx.JSON(http.StatusOK, OfflineResponse{Status: "offline", Error: err.Error()})
	}
	if !json.Valid(res.Body) {
		return ectx.JSON(http.StatusOK, OfflineResponse{Status: "offline", Error: "spoke returned a non-JSON answer"})
	}
	return ectx.JSONBlob(http.StatusOK, res.Body)
}
