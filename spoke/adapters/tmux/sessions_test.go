package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"lgsmfleet/spoke/adapters/privilege"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"
	"lgsmfleet/spoke/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = domain.ManagedUser{Username: "vhserver", UID: 1000, GID: 1000, HomeDir: "/home/vhserver"}

// fakeTmux writes a shell script that records its arguments and behaves like tmux.
func fakeTmux(t *testing.T, body string) (string, string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > %s\n%s\n", argsFile, body)
	path := filepath.Join(dir, "tmux")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, argsFile
}

func directSelector() interfaces.PrivilegeSelector {
	return &mock.PrivilegeSelectorMock{
		ForFunc: func(user domain.ManagedUser) interfaces.Privilege { return privilege.Direct() },
	}
}

func TestSessionLister_ListSessions(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      []string
		wantDiags int
	}{
		{name: "sessions", body: "printf 'vhserver\\ncsgoserver-2\\n\\n'", want: []string{"vhserver", "csgoserver-2"}},
		{name: "no_server", body: "echo 'no server running on /tmp/tmux-1000/default' >&2; exit 1", want: []string{}},
		{name: "error_connecting", body: "echo 'error connecting to /tmp/tmux-1000/default (No such file or directory)' >&2; exit 1", want: []string{}},
		{name: "other_failure", body: "echo 'protocol version mismatch' >&2; exit 1", want: []string{}, wantDiags: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, _ := fakeTmux(t, tt.body)
			l := NewSessionLister(directSelector(), log.NewNopLogger(), WithBinary(bin), WithSocketDir(t.TempDir()))

			res := l.ListSessions(context.Background(), owner)

			names := make([]string, 0, len(res.Value))
			for _, s := range res.Value {
				names = append(names, s.Name)
				assert.Equal(t, "vhserver", s.Owner)
			}
			assert.Equal(t, tt.want, names)
			assert.Len(t, res.Diagnostics, tt.wantDiags)
		})
	}
}

func TestSessionLister_UsesSocketWhenPresent(t *testing.T) {
	bin, argsFile := fakeTmux(t, "echo vhserver")
	socketDir := t.TempDir()
	socket := SocketPath(socketDir, owner.UID)
	require.NoError(t, os.MkdirAll(filepath.Dir(socket), 0o700))
	require.NoError(t, os.WriteFile(socket, nil, 0o600))

	l := NewSessionLister(directSelector(), log.NewNopLogger(), WithBinary(bin), WithSocketDir(socketDir))
	res := l.ListSessions(context.Background(), owner)
	require.Len(t, res.Value, 1)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("-S %s list-sessions -F #{session_name}\n", socket), string(args))
}

func TestSessionLister_ElevationUnavailable(t *testing.T) {
	selector := &mock.PrivilegeSelectorMock{
		ForFunc: func(user domain.ManagedUser) interfaces.Privilege {
			return &mock.PrivilegeMock{
				ElevatedFunc: func() bool { return true },
				RunFunc: func(ctx context.Context, user domain.ManagedUser, name string, args ...string) ([]byte, error) {
					return nil, fmt.Errorf("%w: sudo: a password is required", domain.ErrElevationUnavailable)
				},
			}
		},
	}
	l := NewSessionLister(selector, log.NewNopLogger(), WithSocketDir(t.TempDir()))

	res := l.ListSessions(context.Background(), owner)
	assert.Empty(t, res.Value)
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0].Message, "passwordless sudo")
}

func TestSocketPath(t *testing.T) {
	assert.Equal(t, "/tmp/tmux-1000/default", SocketPath("/tmp", 1000))
}
