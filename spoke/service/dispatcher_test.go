package service

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"lgsmfleet/apierr"
	"lgsmfleet/spoke/adapters/privilege"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"
	"lgsmfleet/spoke/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoHomes(t *testing.T) (domain.ManagedUser, domain.ManagedUser) {
	t.Helper()
	x := domain.ManagedUser{Username: "x", UID: 1000, GID: 1000, HomeDir: t.TempDir()}
	y := domain.ManagedUser{Username: "y", UID: 1001, GID: 1001, HomeDir: t.TempDir()}
	writeFile(t, filepath.Join(x.HomeDir, "notes"), "", 0o644)
	writeFile(t, filepath.Join(y.HomeDir, "vhserver"), "#!/bin/sh\n", 0o755)
	writeFile(t, filepath.Join(y.HomeDir, "notes"), "", 0o755)
	writeFile(t, filepath.Join(x.HomeDir, "vhserver"), "#!/bin/sh\n", 0o644) // not executable
	return x, y
}

func directSelector() *mock.PrivilegeSelectorMock {
	return &mock.PrivilegeSelectorMock{
		ForFunc: func(user domain.ManagedUser) interfaces.Privilege { return privilege.Direct() },
	}
}

func TestOwnerResolver_Resolve(t *testing.T) {
	x, y := twoHomes(t)
	o := NewOwnerResolver(usersMock(x, y))

	tests := []struct {
		name     string
		script   string
		user     string
		wantUser string
		notFound bool
	}{
		{name: "scan_skips_non_executable", script: "vhserver", wantUser: "y"},
		{name: "scan_first_executable_wins", script: "notes", wantUser: "y"},
		{name: "explicit_user", script: "vhserver", user: "y", wantUser: "y"},
		{name: "explicit_user_without_script", script: "vhserver", user: "x", notFound: true},
		{name: "unmanaged_user", script: "vhserver", user: "root", notFound: true},
		{name: "unknown_script", script: "rustserver", notFound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, err := o.Resolve(context.Background(), tt.script, tt.user)
			if tt.notFound {
				assert.True(t, apierr.IsEntityNotFoundError(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, owner.Username)
		})
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	x, y := twoHomes(t)

	tests := []struct {
		name       string
		req        domain.CommandRequest
		wantCode   string
		wantLaunch bool
	}{
		{name: "ok", req: domain.CommandRequest{Script: "vhserver", Action: "restart"}, wantLaunch: true},
		{name: "extra_action", req: domain.CommandRequest{Script: "vhserver", Action: "monitor", User: "y"}, wantLaunch: true},
		{name: "bad_action", req: domain.CommandRequest{Script: "vhserver", Action: "rm"}, wantCode: apierr.ErrBadParameter},
		{name: "traversal", req: domain.CommandRequest{Script: "../vhserver", Action: "start"}, wantCode: apierr.ErrBadParameter},
		{name: "injection", req: domain.CommandRequest{Script: "vhserver;id", Action: "start"}, wantCode: apierr.ErrBadParameter},
		{name: "unknown_script", req: domain.CommandRequest{Script: "rustserver", Action: "start"}, wantCode: apierr.ErrEntityNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var launched *exec.Cmd
			launcher := &mock.LauncherMock{
				LaunchFunc: func(cmd *exec.Cmd) error {
					launched = cmd
					return nil
				},
			}
			d := NewDispatcher(NewOwnerResolver(usersMock(x, y)), directSelector(), launcher, domain.NewActionSet("monitor"), log.NewNopLogger())

			res, err := d.Dispatch(context.Background(), tt.req)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, apierr.ToMyErrorCode(err))
				assert.Empty(t, launcher.LaunchCalls())
				return
			}
			require.NoError(t, err)
			require.True(t, tt.wantLaunch)
			require.NotNil(t, launched)
			assert.Equal(t, []string{filepath.Join(y.HomeDir, "vhserver"), tt.req.Action}, launched.Args)
			assert.Equal(t, y.HomeDir, launched.Dir)
			assert.Equal(t, "y", res.User)
			assert.Contains(t, res.Message, "triggered")
		})
	}
}

func TestDispatcher_LaunchFailure(t *testing.T) {
	x, y := twoHomes(t)
	launcher := &mock.LauncherMock{
		LaunchFunc: func(cmd *exec.Cmd) error { return assert.AnError },
	}
	d := NewDispatcher(NewOwnerResolver(usersMock(x, y)), directSelector(), launcher, domain.NewActionSet(), log.NewNopLogger())

	_, err := d.Dispatch(context.Background(), domain.CommandRequest{Script: "vhserver", Action: "start"})
	assert.True(t, apierr.IsInternalServerError(err))
}
