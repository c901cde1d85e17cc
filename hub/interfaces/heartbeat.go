package interfaces

import (
	"context"
	"time"

	"lgsmfleet/hub/domain"
)

// SpokeProbe asks one spoke for its status.
//
//go:generate moq -stub -out mock/heartbeat.go -pkg mock . SpokeProbe AlertSink TimeProvider
type SpokeProbe interface {
	// Status returns an error only when no HTTP answer arrived (refused, timeout).
	Status(ctx context.Context, spoke domain.Spoke) (domain.ProbeResult, error)
}

// AlertSink delivers alert events.
type AlertSink interface {
	Send(ctx context.Context, event domain.AlertEvent) error
}

// TimeProvider supplies the current time; tests use a fixed clock.
type TimeProvider interface {
	Now() time.Time
}
