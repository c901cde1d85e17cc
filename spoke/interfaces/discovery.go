package interfaces

import (
	"context"

	"lgsmfleet/spoke/domain"
)

// ScriptDiscoverer lists game-server scripts in a managed user's home.
//
//go:generate moq -stub -out mock/discovery.go -pkg mock . ScriptDiscoverer SessionLister ProcessTable
type ScriptDiscoverer interface {
	// Discover never fails: unreadable entries are skipped and a listing failure
	// yields an empty value with a diagnostic.
	Discover(ctx context.Context, user domain.ManagedUser) domain.Result[[]domain.CandidateScript]
}

// SessionLister lists the tmux sessions of a managed user.
type SessionLister interface {
	// ListSessions returns zero sessions when no tmux server runs for the user,
	// and an empty value plus a diagnostic on any other failure.
	ListSessions(ctx context.Context, user domain.ManagedUser) domain.Result[[]domain.LiveSession]
}

// ProcessTable snapshots running processes.
type ProcessTable interface {
	// Snapshot returns every readable process; unreadable entries are skipped.
	Snapshot(ctx context.Context) ([]domain.ProcessInfo, error)
}

// TelemetrySource samples host resource usage.
//
//go:generate moq -stub -out mock/telemetry.go -pkg mock . TelemetrySource
type TelemetrySource interface {
	Telemetry(ctx context.Context) (domain.Telemetry, error)
}
