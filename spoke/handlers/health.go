package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const healthPath = "/healthz"

// RegisterHealthCheck adds the unauthenticated GET /healthz liveness probe.
func RegisterHealthCheck(router EchoRouter) {
	router.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
