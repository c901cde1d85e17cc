// Package tmux lists a managed user's tmux sessions across a privilege boundary.
package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// noServerMessages mean the user has no tmux server, i.e. zero sessions.
var noServerMessages = []string{
	"no server running",
	"failed to connect",
	"error connecting",
	"no sessions",
}

// Option configures the session lister.
type Option func(*sessionLister)

// WithBinary overrides the tmux executable.
func WithBinary(path string) Option {
	return func(l *sessionLister) { l.binary = path }
}

// WithSocketDir overrides the directory holding tmux-<uid> socket folders.
func WithSocketDir(dir string) Option {
	return func(l *sessionLister) { l.socketDir = dir }
}

// WithTimeout bounds one list-sessions call.
func WithTimeout(d time.Duration) Option {
	return func(l *sessionLister) { l.timeout = d }
}

type sessionLister struct {
	selector  interfaces.PrivilegeSelector
	binary    string
	socketDir string
	timeout   time.Duration
	logger    log.Logger
}

// NewSessionLister creates a lister that runs `tmux list-sessions` as each managed user.
func NewSessionLister(selector interfaces.PrivilegeSelector, logger log.Logger, opts ...Option) interfaces.SessionLister {
	socketDir := os.Getenv("TMUX_TMPDIR")
	if socketDir == "" {
		socketDir = os.TempDir()
	}
	l := &sessionLister{
		selector:  selector,
		binary:    "tmux",
		socketDir: socketDir,
		timeout:   5 * time.Second,
		logger:    log.With(logger, "component", "session_prober"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SocketPath is the default socket of uid's tmux server under dir.
func SocketPath(dir string, uid int) string {
	return filepath.Join(dir, fmt.Sprintf("tmux-%d", uid), "default")
}

func (l *sessionLister) ListSessions(ctx context.Context, user domain.ManagedUser) domain.Result[[]domain.LiveSession] {
	var res domain.Result[[]domain.LiveSession]

	args := make([]string, 0, 5)
	if socket := SocketPath(l.socketDir, user.UID); socketExists(socket) {
		args = append(args, "-S", socket)
	}
	args = append(args, "list-sessions", "-F", "#{session_name}")

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	out, err := l.selector.For(user).Run(ctx, user, l.binary, args...)
	if err != nil {
		if IsNoServer(err.Error()) {
			res.Value = []domain.LiveSession{}
			return res
		}
		msg := err.Error()
		if errors.Is(err, domain.ErrElevationUnavailable) {
			msg = "cannot list sessions: " + msg + " (grant passwordless sudo to this user for the agent)"
		}
		level.Warn(l.logger).Log("msg", "list-sessions failed", "user", user.Username, "err", err)
		res.Value = []domain.LiveSession{}
		res.Diagnose(domain.Diagnostic{Component: "session_prober", User: user.Username, Message: msg})
		return res
	}

	res.Value = ParseSessions(string(out), user.Username)
	return res
}

// ParseSessions turns `list-sessions -F '#{session_name}'` output into sessions.
func ParseSessions(out, owner string) []domain.LiveSession {
	sessions := []domain.LiveSession{}
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		sessions = append(sessions, domain.LiveSession{Name: name, Owner: owner})
	}
	return sessions
}

// IsNoServer reports whether tmux output means the user simply has no server.
func IsNoServer(msg string) bool {
	for _, m := range noServerMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func socketExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
