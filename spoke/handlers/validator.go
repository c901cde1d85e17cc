package handlers

import (
	"context"
	"crypto/subtle"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// ErrInvalidAPIKey is returned by the security check for a missing or wrong key.
var ErrInvalidAPIKey = errors.New("invalid or missing API key")

// LoadSwagger parses and validates the embedded OpenAPI document.
func LoadSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// NewRequestValidator returns middleware that checks every documented request
// against the OpenAPI document, including the API key security schemes.
// Only /healthz is served outside the document; every other undocumented
// path or method is rejected before it reaches a handler.
func NewRequestValidator(doc *openapi3.T, apiKey string) (echo.MiddlewareFunc, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: apiKeyAuthenticator(apiKey),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				switch {
				case errors.Is(err, routers.ErrPathNotFound) && req.URL.Path == healthPath:
					return next(c)
				case errors.Is(err, routers.ErrPathNotFound):
					return echo.NewHTTPError(http.StatusNotFound, "route not found").SetInternal(err)
				case errors.Is(err, routers.ErrMethodNotAllowed):
					return echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed").SetInternal(err)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				var securityErr *openapi3filter.SecurityRequirementsError
				if errors.As(err, &securityErr) {
					return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidAPIKey.Error()).SetInternal(err)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			return next(c)
		}
	}, nil
}

func apiKeyAuthenticator(apiKey string) openapi3filter.AuthenticationFunc {
	want := []byte(apiKey)
	return func(ctx context.Context, ai *openapi3filter.AuthenticationInput) error {
		scheme := ai.SecurityScheme
		if scheme == nil || scheme.Type != "apiKey" {
			return ErrInvalidAPIKey
		}
		req := ai.RequestValidationInput.Request
		var got string
		switch scheme.In {
		case "header":
			got = req.Header.Get(scheme.Name)
		case "query":
			got = req.URL.Query().Get(scheme.Name)
		}
		if got == "" || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return ErrInvalidAPIKey
		}
		return nil
	}
}
