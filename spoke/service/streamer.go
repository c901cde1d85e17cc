package service

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"syscall"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultStreamBacklog is how many existing lines a stream starts with.
const DefaultStreamBacklog = 10

// LogStreamer follows a script's log with a `tail -f` child.
type LogStreamer struct {
	locator *logLocator
	grace   time.Duration
	logger  log.Logger
}

// NewLogStreamer creates a LogStreamer. grace bounds how long a terminated tail
// may take to exit before it is killed.
func NewLogStreamer(owners *OwnerResolver, selector interfaces.PrivilegeSelector, patterns []string, grace time.Duration, logger log.Logger) *LogStreamer {
	return &LogStreamer{
		locator: &logLocator{
			owners:   helpers.NilPanic(owners, "service.streamer.go: owners is required"),
			selector: helpers.NilPanic(selector, "service.streamer.go: selector is required"),
			patterns: patterns,
		},
		grace:  grace,
		logger: log.With(helpers.NilPanic(logger, "service.streamer.go: logger is required"), "component", "log_streamer"),
	}
}

// Stream sends each log line to send until ctx is done or send fails, then
// terminates the tail child and waits for it.
//
// Returns before starting anything: bad_parameter, entity_not_found (message
// "Log file not found at <path>") or privilege_unavailable. Once streaming,
// returns nil on disconnect and privilege_unavailable if sudo refused to run tail.
func (s *LogStreamer) Stream(ctx context.Context, req domain.LogRequest, send func(line string) error) error {
	backlog := req.Lines
	if backlog == 0 {
		backlog = DefaultStreamBacklog
	}
	if err := domain.ValidateLines(backlog); err != nil {
		return err
	}
	target, err := s.locator.locate(ctx, req.Script, req.User)
	if err != nil {
		return err
	}
	if !target.exists {
		return apierr.NewEntityNotFoundError("Log file not found at "+target.path, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := s.locator.selector.For(target.owner)
	cmd := p.Follow(ctx, target.owner, "tail", "-n", strconv.Itoa(backlog), "-f", "--", target.path)
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = s.grace
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return apierr.NewInternalServerError("failed to start log stream", err)
	}
	if err := cmd.Start(); err != nil {
		return apierr.NewInternalServerError("failed to start log stream", err)
	}
	pid := cmd.Process.Pid
	level.Info(s.logger).Log("msg", "log stream started", "pid", pid, "user", target.owner.Username, "path", target.path)

	br := bufio.NewReader(stdout)
	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			if err := send(strings.TrimRight(line, "\r\n")); err != nil {
				break
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				level.Debug(s.logger).Log("msg", "log stream read ended", "pid", pid, "err", readErr)
			}
			break
		}
	}

	cancel()
	waitErr := cmd.Wait()
	level.Info(s.logger).Log("msg", "log stream stopped", "pid", pid, "err", waitErr)

	if p.Refused(stderr.String()) {
		return apierr.NewPrivilegeUnavailableError("elevation unavailable; grant passwordless sudo or read access to the log", errors.New(strings.TrimSpace(stderr.String())))
	}
	return nil
}
