package service

import (
	"context"
	"errors"

	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type logSink struct {
	logger log.Logger
}

// NewLogSink writes every alert to the log.
func NewLogSink(logger log.Logger) interfaces.AlertSink {
	return &logSink{logger: log.With(helpers.NilPanic(logger, "service.sinks.go: logger is required"), "component", "alerts")}
}

func (s *logSink) Send(_ context.Context, ev domain.AlertEvent) error {
	logger := level.Warn(s.logger)
	if ev.Severity == domain.SeverityCritical {
		logger = level.Error(s.logger)
	}
	return logger.Log(
		"msg", ev.Message,
		"alert_id", ev.ID,
		"kind", ev.Kind,
		"spoke", ev.SpokeName,
		"ip", ev.SpokeIP,
		"status_code", ev.StatusCode,
		"cause", ev.Cause,
	)
}

type multiSink []interfaces.AlertSink

// NewMultiSink fans each alert out to every sink. One sink failing does not
// stop delivery to the others; all failures are joined.
func NewMultiSink(sinks ...interfaces.AlertSink) interfaces.AlertSink {
	return multiSink(sinks)
}

func (m multiSink) Send(ctx context.Context, ev domain.AlertEvent) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
