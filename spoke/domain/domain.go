// Package domain holds the spoke's value types: managed users, discovered scripts,
// live sessions and the reconciled instance list.
package domain

import "errors"

// ErrElevationUnavailable is returned when an operation needs to act as another
// user and non-interactive sudo refuses (password required, not in sudoers).
var ErrElevationUnavailable = errors.New("elevation unavailable")

// ManagedUser is an OS account whose home directory is inspected for game servers.
type ManagedUser struct {
	Username string
	UID      int
	GID      int
	HomeDir  string
}

// Identity is the effective user the agent runs as.
type Identity struct {
	Username string
	UID      int
}

// IsRoot reports whether the identity is the superuser.
func (i Identity) IsRoot() bool {
	return i.UID == 0
}

// CandidateScript is a game-server control script found in a managed user's home.
type CandidateScript struct {
	Name  string
	Owner string
}

// LiveSession is a tmux session owned by a managed user.
type LiveSession struct {
	Name  string
	Owner string
}

// ProcessInfo is one entry of a process table snapshot.
type ProcessInfo struct {
	PID     int
	UID     int
	Cmdline string
}

// InstanceStatus is the reconciled state of an instance.
type InstanceStatus string

const (
	StatusRunning InstanceStatus = "running"
	StatusStopped InstanceStatus = "stopped"
)

// Instance is one row of the status report: a discovered script, or a session
// that no script claimed (zombie).
type Instance struct {
	User     string
	Script   string
	Session  string
	Status   InstanceStatus
	IsZombie bool
}

// Diagnostic records a recovered failure that did not abort the pass.
type Diagnostic struct {
	Component string
	User      string
	Subject   string
	Message   string
}

// Result carries a (possibly partial) value together with the diagnostics
// collected while producing it.
type Result[T any] struct {
	Value       T
	Diagnostics []Diagnostic
}

// Diagnose appends a diagnostic to the result.
func (r *Result[T]) Diagnose(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// StatusReport is the outcome of one reconciliation pass.
type StatusReport struct {
	Instances   []Instance
	Diagnostics []Diagnostic
}

// Telemetry is a host resource snapshot in percent.
type Telemetry struct {
	CPUUsage  float64
	RAMUsage  float64
	DiskUsage float64
}
