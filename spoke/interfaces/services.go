package interfaces

import (
	"context"

	"lgsmfleet/spoke/domain"
)

// StatusProvider runs one reconciliation pass.
//
//go:generate moq -stub -out mock/services.go -pkg mock . StatusProvider CommandDispatcher LogReader LogStreamer
type StatusProvider interface {
	Status(ctx context.Context) (domain.StatusReport, error)
}

// CommandDispatcher launches a script action in the background.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, req domain.CommandRequest) (domain.CommandResult, error)
}

// LogReader returns the tail of a script's console log.
type LogReader interface {
	Read(ctx context.Context, req domain.LogRequest) (domain.LogTail, error)
}

// LogStreamer follows a script's console log until ctx is done or send fails.
type LogStreamer interface {
	Stream(ctx context.Context, req domain.LogRequest, send func(line string) error) error
}
