// Package privilege runs commands as managed users, either directly or through
// non-interactive sudo, and launches detached game-server commands.
package privilege

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"
)

// sudoRefusals are stderr fragments printed by `sudo -n` when it will not run the command.
var sudoRefusals = []string{
	"a password is required",
	"a terminal is required",
	"is not in the sudoers file",
	"is not allowed to execute",
	"may not run sudo",
	"unknown user",
}

// NewSelector returns the selector used by the spoke: superuser acts directly with
// the owner's credentials, the same user acts directly, anyone else goes through sudo.
func NewSelector(identity domain.Identity) interfaces.PrivilegeSelector {
	return &selector{identity: identity}
}

type selector struct {
	identity domain.Identity
}

func (s *selector) For(user domain.ManagedUser) interfaces.Privilege {
	switch {
	case s.identity.IsRoot():
		return rootPrivilege{}
	case s.identity.Username == user.Username || s.identity.UID == user.UID:
		return directPrivilege{}
	default:
		return sudoPrivilege{}
	}
}

// Direct returns the privilege that runs commands as the agent itself.
func Direct() interfaces.Privilege {
	return directPrivilege{}
}

type directPrivilege struct{}

func (directPrivilege) Elevated() bool { return false }

func (directPrivilege) Command(ctx context.Context, _ domain.ManagedUser, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

func (p directPrivilege) Follow(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
	cmd := p.Command(ctx, user, name, args...)
	cmd.SysProcAttr = tied(cmd.SysProcAttr)
	return cmd
}

func (directPrivilege) Refused(string) bool { return false }

func (p directPrivilege) Run(ctx context.Context, user domain.ManagedUser, name string, args ...string) ([]byte, error) {
	return run(p.Command(ctx, user, name, args...), false)
}

// rootPrivilege runs commands directly but drops the child to the owner's uid/gid,
// so files the game server creates keep the owner's permissions.
type rootPrivilege struct{}

func (rootPrivilege) Elevated() bool { return false }

func (rootPrivilege) Command(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = withCredential(cmd.SysProcAttr, user.UID, user.GID)
	cmd.Env = ownerEnv(user)
	return cmd
}

func (p rootPrivilege) Follow(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
	cmd := p.Command(ctx, user, name, args...)
	cmd.SysProcAttr = tied(cmd.SysProcAttr)
	return cmd
}

func (rootPrivilege) Refused(string) bool { return false }

func (p rootPrivilege) Run(ctx context.Context, user domain.ManagedUser, name string, args ...string) ([]byte, error) {
	return run(p.Command(ctx, user, name, args...), false)
}

type sudoPrivilege struct{}

func (sudoPrivilege) Elevated() bool { return true }

func (sudoPrivilege) Command(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
	argv := append([]string{"-n", "-H", "-u", user.Username, "--", name}, args...)
	return exec.CommandContext(ctx, "sudo", argv...)
}

func (p sudoPrivilege) Follow(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
	cmd := p.Command(ctx, user, name, args...)
	cmd.SysProcAttr = tied(cmd.SysProcAttr)
	return cmd
}

func (sudoPrivilege) Refused(stderr string) bool { return IsSudoRefusal(stderr) }

func (p sudoPrivilege) Run(ctx context.Context, user domain.ManagedUser, name string, args ...string) ([]byte, error) {
	return run(p.Command(ctx, user, name, args...), true)
}

func run(cmd *exec.Cmd, elevated bool) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}
	msg := strings.TrimSpace(stderr.String())
	if elevated && IsSudoRefusal(msg) {
		return stdout.Bytes(), fmt.Errorf("%w: %s", domain.ErrElevationUnavailable, msg)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && msg != "" {
		return stdout.Bytes(), &RunError{ExitCode: exitErr.ExitCode(), Stderr: msg, Err: err}
	}
	return stdout.Bytes(), err
}

// RunError is a non-zero exit with captured stderr.
type RunError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("exit status %d: %s", e.ExitCode, e.Stderr)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// IsSudoRefusal reports whether stderr text is sudo declining to run a command.
func IsSudoRefusal(stderr string) bool {
	if !strings.Contains(stderr, "sudo") {
		return false
	}
	for _, fragment := range sudoRefusals {
		if strings.Contains(stderr, fragment) {
			return true
		}
	}
	return false
}

func ownerEnv(user domain.ManagedUser) []string {
	env := make([]string, 0, len(os.Environ())+3)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "USER=") || strings.HasPrefix(kv, "LOGNAME=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "HOME="+user.HomeDir, "USER="+user.Username, "LOGNAME="+user.Username)
}
