package service

import (
	"context"
	"fmt"
	"path/filepath"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Dispatcher validates and launches `<script> <action>` as the script's owner.
// Concurrent dispatches for the same script are not serialized.
type Dispatcher struct {
	owners   *OwnerResolver
	selector interfaces.PrivilegeSelector
	launcher interfaces.Launcher
	actions  domain.ActionSet
	logger   log.Logger
}

// NewDispatcher creates a Dispatcher. Panics on nil dependencies.
func NewDispatcher(owners *OwnerResolver, selector interfaces.PrivilegeSelector, launcher interfaces.Launcher, actions domain.ActionSet, logger log.Logger) *Dispatcher {
	return &Dispatcher{
		owners:   helpers.NilPanic(owners, "service.dispatcher.go: owners is required"),
		selector: helpers.NilPanic(selector, "service.dispatcher.go: selector is required"),
		launcher: helpers.NilPanic(launcher, "service.dispatcher.go: launcher is required"),
		actions:  helpers.NilPanic(actions, "service.dispatcher.go: actions is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.dispatcher.go: logger is required"), "component", "dispatcher"),
	}
}

// Dispatch launches the command detached and returns as soon as it started.
//
// Returns: bad_parameter for an invalid script or action (before anything runs);
// entity_not_found when no owner is found; internal_server_error when the launch fails.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.CommandRequest) (domain.CommandResult, error) {
	if err := domain.ValidateScriptName(req.Script); err != nil {
		return domain.CommandResult{}, err
	}
	if err := d.actions.Validate(req.Action); err != nil {
		return domain.CommandResult{}, err
	}

	owner, err := d.owners.Resolve(ctx, req.Script, req.User)
	if err != nil {
		return domain.CommandResult{}, err
	}

	// the child outlives the request
	cmd := d.selector.For(owner).Command(context.WithoutCancel(ctx), owner, filepath.Join(owner.HomeDir, req.Script), req.Action)
	cmd.Dir = owner.HomeDir
	if err := d.launcher.Launch(cmd); err != nil {
		return domain.CommandResult{}, apierr.NewInternalServerError("failed to launch command", err)
	}

	level.Info(d.logger).Log("msg", "command triggered", "user", owner.Username, "script", req.Script, "action", req.Action)
	return domain.CommandResult{
		Script:  req.Script,
		Action:  req.Action,
		User:    owner.Username,
		Message: fmt.Sprintf("Command '%s' triggered for %s", req.Action, req.Script),
	}, nil
}
