package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all hub handlers.
type ServerInterface interface {
	// (GET /spokes)
	ListSpokes(ctx echo.Context) error
	// (POST /spokes)
	AddSpoke(ctx echo.Context) error
	// (GET /spokes/{id})
	GetSpoke(ctx echo.Context, id int64) error
	// (DELETE /spokes/{id})
	DeleteSpoke(ctx echo.Context, id int64) error
	// (GET /settings)
	GetSettings(ctx echo.Context) error
	// (POST /settings)
	UpdateSettings(ctx echo.Context) error
	// (GET /proxy/status/{id})
	ProxyStatus(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListSpokes(ctx echo.Context) error {
	return w.Handler.ListSpokes(ctx)
}

func (w *ServerInterfaceWrapper) AddSpoke(ctx echo.Context) error {
	return w.Handler.AddSpoke(ctx)
}

func (w *ServerInterfaceWrapper) GetSpoke(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSpoke(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteSpoke(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteSpoke(ctx, id)
}

func (w *ServerInterfaceWrapper) GetSettings(ctx echo.Context) error {
	return w.Handler.GetSettings(ctx)
}

func (w *ServerInterfaceWrapper) UpdateSettings(ctx echo.Context) error {
	return w.Handler.UpdateSettings(ctx)
}

func (w *ServerInterfaceWrapper) ProxyStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ProxyStatus(ctx, id)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/spokes", wrapper.ListSpokes)
	router.POST("/spokes", wrapper.AddSpoke)
	router.GET("/spokes/:id", wrapper.GetSpoke)
	router.DELETE("/spokes/:id", wrapper.DeleteSpoke)
	router.GET("/settings", wrapper.GetSettings)
	router.POST("/settings", wrapper.UpdateSettings)
	router.GET("/proxy/status/:id", wrapper.ProxyStatus)
}

// RegisterHealthCheck adds the unauthenticated GET /healthz liveness probe.
func RegisterHealthCheck(router EchoRouter) {
	router.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
