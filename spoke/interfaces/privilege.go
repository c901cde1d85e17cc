package interfaces

import (
	"context"
	"os/exec"

	"lgsmfleet/spoke/domain"
)

// Privilege runs commands as a managed user. A direct implementation runs them
// as the agent itself; an elevated one goes through non-interactive sudo.
type Privilege interface {
	// Elevated reports whether commands cross an identity boundary through sudo.
	Elevated() bool

	// Command builds (but does not start) a command running name with args as user.
	Command(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd

	// Follow builds a long-running helper command (tail -f) that runs in its own
	// process group and is terminated when the agent dies.
	Follow(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd

	// Refused reports whether the stderr of a finished command shows sudo
	// declining to run it. Always false for a direct privilege.
	Refused(stderr string) bool

	// Run executes the command and returns its stdout.
	// Returns:
	// 1) (stdout, nil) on exit status 0;
	// 2) (stdout, error wrapping domain.ErrElevationUnavailable) when sudo refuses;
	// 3) (stdout, *exec.ExitError-wrapping error with stderr text) on other failures.
	Run(ctx context.Context, user domain.ManagedUser, name string, args ...string) ([]byte, error)
}

// PrivilegeSelector picks the Privilege for acting as a user, by comparing the
// target with the agent's effective identity.
//
//go:generate moq -stub -out mock/privilege.go -pkg mock . Privilege PrivilegeSelector
type PrivilegeSelector interface {
	For(user domain.ManagedUser) Privilege
}

// Launcher starts a command detached from the agent and does not wait for it.
//
//go:generate moq -stub -out mock/launcher.go -pkg mock . Launcher
type Launcher interface {
	// Launch starts cmd in its own session. Returns a start error only; the exit
	// status is reaped in the background and never reported.
	Launch(cmd *exec.Cmd) error
}
