package service

import (
	"context"
	"fmt"
	"sync"

	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// Reconciler builds the instance list from scripts, sessions and the process table.
// It keeps no state between passes.
type Reconciler struct {
	users    interfaces.UserEnumerator
	scripts  interfaces.ScriptDiscoverer
	sessions interfaces.SessionLister
	procs    interfaces.ProcessTable
	logger   log.Logger
}

// NewReconciler creates a Reconciler. Panics on nil dependencies.
func NewReconciler(
	users interfaces.UserEnumerator,
	scripts interfaces.ScriptDiscoverer,
	sessions interfaces.SessionLister,
	procs interfaces.ProcessTable,
	logger log.Logger,
) *Reconciler {
	return &Reconciler{
		users:    helpers.NilPanic(users, "service.reconciler.go: users is required"),
		scripts:  helpers.NilPanic(scripts, "service.reconciler.go: scripts is required"),
		sessions: helpers.NilPanic(sessions, "service.reconciler.go: sessions is required"),
		procs:    helpers.NilPanic(procs, "service.reconciler.go: procs is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.reconciler.go: logger is required"), "component", "reconciler"),
	}
}

type userReport struct {
	instances   []domain.Instance
	diagnostics []domain.Diagnostic
}

// Status runs one reconciliation pass over every managed user. Users are
// reconciled concurrently; a failure for one user only adds diagnostics.
//
// Returns an error only when the managed users cannot be enumerated.
func (r *Reconciler) Status(ctx context.Context) (domain.StatusReport, error) {
	users, err := r.users.ManagedUsers(ctx)
	if err != nil {
		return domain.StatusReport{}, fmt.Errorf("enumerate managed users: %w", err)
	}

	reports := make([]userReport, len(users.Value))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range users.Value {
		g.Go(func() error {
			reports[i] = r.reconcileUser(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	report := domain.StatusReport{
		Instances:   []domain.Instance{},
		Diagnostics: append([]domain.Diagnostic{}, users.Diagnostics...),
	}
	for _, ur := range reports {
		report.Instances = append(report.Instances, ur.instances...)
		report.Diagnostics = append(report.Diagnostics, ur.diagnostics...)
	}
	level.Debug(r.logger).Log("msg", "reconciled", "users", len(users.Value), "instances", len(report.Instances), "diagnostics", len(report.Diagnostics))
	return report, nil
}

func (r *Reconciler) reconcileUser(ctx context.Context, user domain.ManagedUser) userReport {
	var (
		scripts  domain.Result[[]domain.CandidateScript]
		sessions domain.Result[[]domain.LiveSession]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scripts = r.scripts.Discover(gctx, user)
		return nil
	})
	g.Go(func() error {
		sessions = r.sessions.ListSessions(gctx, user)
		return nil
	})
	_ = g.Wait()

	var out userReport
	out.diagnostics = append(out.diagnostics, scripts.Diagnostics...)
	out.diagnostics = append(out.diagnostics, sessions.Diagnostics...)

	snapshot := sync.OnceValues(func() ([]domain.ProcessInfo, error) {
		return r.procs.Snapshot(ctx)
	})
	var snapshotFailed bool
	corroborate := func(script string) bool {
		procs, err := snapshot()
		if err != nil {
			if !snapshotFailed {
				snapshotFailed = true
				out.diagnostics = append(out.diagnostics, domain.Diagnostic{Component: "process_matcher", User: user.Username, Message: err.Error()})
			}
			return false
		}
		return MatchProcess(procs, user.UID, script)
	}

	out.instances = ReconcileUser(user.Username, scripts.Value, sessions.Value, corroborate)
	return out
}
