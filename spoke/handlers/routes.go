package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	ApiKeyHeaderScopes = "ApiKeyHeader.Scopes"
	ApiKeyQueryScopes  = "ApiKeyQuery.Scopes"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /status)
	GetStatus(ctx echo.Context) error
	// (GET /telemetry)
	GetTelemetry(ctx echo.Context) error
	// (POST /command/{script}/{action})
	RunCommand(ctx echo.Context, script string, action string, params RunCommandParams) error
	// (GET /logs/{script})
	GetLogs(ctx echo.Context, script string, params GetLogsParams) error
	// (GET /logs/{script}/stream)
	StreamLogs(ctx echo.Context, script string, params StreamLogsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatus(ctx echo.Context) error {
	setScopes(ctx)
	return w.Handler.GetStatus(ctx)
}

// GetTelemetry converts echo context to params.
func (w *ServerInterfaceWrapper) GetTelemetry(ctx echo.Context) error {
	setScopes(ctx)
	return w.Handler.GetTelemetry(ctx)
}

// RunCommand converts echo context to params.
func (w *ServerInterfaceWrapper) RunCommand(ctx echo.Context) error {
	var err error

	var script string
	err = runtime.BindStyledParameterWithOptions("simple", "script", ctx.Param("script"), &script, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter script: %s", err))
	}

	var action string
	err = runtime.BindStyledParameterWithOptions("simple", "action", ctx.Param("action"), &action, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter action: %s", err))
	}

	setScopes(ctx)

	var params RunCommandParams
	err = runtime.BindQueryParameter("form", true, false, "user", ctx.QueryParams(), &params.User)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user: %s", err))
	}

	return w.Handler.RunCommand(ctx, script, action, params)
}

// GetLogs converts echo context to params.
func (w *ServerInterfaceWrapper) GetLogs(ctx echo.Context) error {
	var err error

	var script string
	err = runtime.BindStyledParameterWithOptions("simple", "script", ctx.Param("script"), &script, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter script: %s", err))
	}

	setScopes(ctx)

	var params GetLogsParams
	err = runtime.BindQueryParameter("form", true, false, "user", ctx.QueryParams(), &params.User)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "lines", ctx.QueryParams(), &params.Lines)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lines: %s", err))
	}

	return w.Handler.GetLogs(ctx, script, params)
}

// StreamLogs converts echo context to params.
func (w *ServerInterfaceWrapper) StreamLogs(ctx echo.Context) error {
	var err error

	var script string
	err = runtime.BindStyledParameterWithOptions("simple", "script", ctx.Param("script"), &script, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter script: %s", err))
	}

	setScopes(ctx)

	var params StreamLogsParams
	err = runtime.BindQueryParameter("form", true, false, "user", ctx.QueryParams(), &params.User)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "lines", ctx.QueryParams(), &params.Lines)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lines: %s", err))
	}

	return w.Handler.StreamLogs(ctx, script, params)
}

func setScopes(ctx echo.Context) {
	ctx.Set(ApiKeyHeaderScopes, []string{})
	ctx.Set(ApiKeyQueryScopes, []string{})
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/status", wrapper.GetStatus)
	router.GET(baseURL+"/telemetry", wrapper.GetTelemetry)
	router.POST(baseURL+"/command/:script/:action", wrapper.RunCommand)
	router.GET(baseURL+"/logs/:script", wrapper.GetLogs)
	router.GET(baseURL+"/logs/:script/stream", wrapper.StreamLogs)
}
