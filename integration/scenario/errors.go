package scenario

import (
	"errors"
	"fmt"
)

// ErrHubNotConfigured is returned by hub scenarios when no hub address is set.
var ErrHubNotConfigured = errors.New("hub address is not configured")

// UnknownScenarioError is returned when the requested scenario name is not registered.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario: %s", e.Name)
}

// UnexpectedResponseError reports a response whose status or error code differs from the expected one.
type UnexpectedResponseError struct {
	Call       string
	StatusCode int
	Want       int
	Code       string
	WantCode   string
}

func (e *UnexpectedResponseError) Error() string {
	if e.WantCode != "" {
		return fmt.Sprintf("%s: status=%d code=%q, want status=%d code=%q", e.Call, e.StatusCode, e.Code, e.Want, e.WantCode)
	}
	return fmt.Sprintf("%s: status=%d, want %d", e.Call, e.StatusCode, e.Want)
}
