package service

import (
	"time"

	"lgsmfleet/helpers"
	"lgsmfleet/hub/interfaces"
)

// timeProvider implements interfaces.TimeProvider with an injected clock.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func.
// Panics on nil now. main passes a UTC wall clock; tests pass a fixed time.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}
