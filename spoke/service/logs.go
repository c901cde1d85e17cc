package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// logLocator resolves a script's log file under its owner's home.
type logLocator struct {
	owners   *OwnerResolver
	selector interfaces.PrivilegeSelector
	patterns []string
}

type logTarget struct {
	owner  domain.ManagedUser
	path   string
	exists bool
}

func (l *logLocator) locate(ctx context.Context, script, username string) (logTarget, error) {
	if err := domain.ValidateScriptName(script); err != nil {
		return logTarget{}, err
	}
	owner, err := l.owners.Resolve(ctx, script, username)
	if err != nil {
		return logTarget{}, err
	}

	p := l.selector.For(owner)
	paths := LogPaths(owner.HomeDir, script, l.patterns)
	for _, path := range paths {
		ok, err := fileExists(ctx, p, owner, path)
		if err != nil {
			return logTarget{}, err
		}
		if ok {
			return logTarget{owner: owner, path: path, exists: true}, nil
		}
	}
	return logTarget{owner: owner, path: paths[0]}, nil
}

// LogPaths expands the patterns for script under home. `{script}` is replaced by the script name.
func LogPaths(home, script string, patterns []string) []string {
	if len(patterns) == 0 {
		patterns = domain.DefaultLogPatterns
	}
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, filepath.Join(home, strings.ReplaceAll(p, "{script}", script)))
	}
	return out
}

// fileExists stats path directly, falling back to `test -f` as the owner when
// the agent cannot see into the owner's home.
func fileExists(ctx context.Context, p interfaces.Privilege, owner domain.ManagedUser, path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case !errors.Is(err, os.ErrPermission):
		return false, nil
	case !p.Elevated():
		return false, apierr.NewPrivilegeUnavailableError("the agent cannot read this log; grant read access to the log directory", err)
	}

	_, err = p.Run(ctx, owner, "test", "-f", path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrElevationUnavailable) {
		return false, apierr.NewPrivilegeUnavailableError("elevation unavailable; grant passwordless sudo or read access to the log", err)
	}
	return false, nil
}

// LogReader returns the bounded tail of a script's console log.
type LogReader struct {
	locator *logLocator
	logger  log.Logger
}

// NewLogReader creates a LogReader. Panics on nil dependencies.
func NewLogReader(owners *OwnerResolver, selector interfaces.PrivilegeSelector, patterns []string, logger log.Logger) *LogReader {
	return &LogReader{
		locator: &logLocator{
			owners:   helpers.NilPanic(owners, "service.logs.go: owners is required"),
			selector: helpers.NilPanic(selector, "service.logs.go: selector is required"),
			patterns: patterns,
		},
		logger: log.With(helpers.NilPanic(logger, "service.logs.go: logger is required"), "component", "log_reader"),
	}
}

// Read returns at most req.Lines lines from the end of the log.
//
// Returns: bad_parameter for an invalid script or line count; entity_not_found when
// the owner or the file is missing; privilege_unavailable when the file exists but
// neither a direct nor an elevated read is possible.
func (r *LogReader) Read(ctx context.Context, req domain.LogRequest) (domain.LogTail, error) {
	if err := domain.ValidateLines(req.Lines); err != nil {
		return domain.LogTail{}, err
	}
	target, err := r.locator.locate(ctx, req.Script, req.User)
	if err != nil {
		return domain.LogTail{}, err
	}
	if !target.exists {
		return domain.LogTail{}, apierr.NewEntityNotFoundError("Log file not found at "+target.path, nil)
	}

	tail := domain.LogTail{Script: req.Script, User: target.owner.Username, Path: target.path}

	f, err := os.Open(target.path)
	if err == nil {
		defer f.Close()
		lines, err := TailLines(f, req.Lines)
		if err != nil {
			return domain.LogTail{}, apierr.NewInternalServerError("failed to read log", err)
		}
		tail.Lines = lines
		return tail, nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return domain.LogTail{}, apierr.NewInternalServerError("failed to open log", err)
	}

	p := r.locator.selector.For(target.owner)
	if !p.Elevated() {
		return domain.LogTail{}, apierr.NewPrivilegeUnavailableError("the agent cannot read this log; grant read access to the log file", err)
	}
	level.Debug(r.logger).Log("msg", "reading log with elevation", "user", target.owner.Username, "path", target.path)
	out, err := p.Run(ctx, target.owner, "tail", "-n", strconv.Itoa(req.Lines), "--", target.path)
	if err != nil {
		if errors.Is(err, domain.ErrElevationUnavailable) {
			return domain.LogTail{}, apierr.NewPrivilegeUnavailableError("elevation unavailable; grant passwordless sudo or read access to the log", err)
		}
		if strings.Contains(err.Error(), "No such file") {
			return domain.LogTail{}, apierr.NewEntityNotFoundError("Log file not found at "+target.path, err)
		}
		return domain.LogTail{}, apierr.NewInternalServerError("failed to read log", err)
	}
	lines, _ := TailLines(strings.NewReader(string(out)), req.Lines)
	tail.Lines = lines
	return tail, nil
}

// TailLines returns at most n trailing lines of r without their line terminators.
func TailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	ring := make([]string, n)
	count := 0
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			ring[count%n] = strings.TrimRight(line, "\r\n")
			count++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read lines: %w", err)
		}
	}

	size := min(count, n)
	out := make([]string, 0, size)
	for i := count - size; i < count; i++ {
		out = append(out, ring[i%n])
	}
	return out, nil
}
