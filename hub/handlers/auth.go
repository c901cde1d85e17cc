package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const healthPath = "/healthz"

// NewKeyAuth returns middleware that accepts the admin key in X-API-KEY or the
// api_key query parameter. /healthz is left open.
func NewKeyAuth(apiKey string) (echo.MiddlewareFunc, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	want := []byte(apiKey)
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == healthPath
		},
		KeyLookup: "header:X-API-KEY,query:api_key",
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), want) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing API key").SetInternal(err)
		},
	}), nil
}
