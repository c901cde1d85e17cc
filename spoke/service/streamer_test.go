package service

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/spoke/adapters/privilege"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"
	"lgsmfleet/spoke/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSelector hands out direct commands and remembers them.
type recordingSelector struct {
	mu   sync.Mutex
	cmds []*exec.Cmd
}

func (s *recordingSelector) For(user domain.ManagedUser) interfaces.Privilege {
	return &mock.PrivilegeMock{
		FollowFunc: func(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
			cmd := privilege.Direct().Follow(ctx, user, name, args...)
			s.mu.Lock()
			s.cmds = append(s.cmds, cmd)
			s.mu.Unlock()
			return cmd
		},
	}
}

func (s *recordingSelector) last() *exec.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cmds) == 0 {
		return nil
	}
	return s.cmds[len(s.cmds)-1]
}

func requireTail(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tail"); err != nil {
		t.Skip("tail not available")
	}
}

func TestLogStreamer_StreamsAndStopsOnSendFailure(t *testing.T) {
	requireTail(t)
	x, y := twoHomes(t)
	logPath := filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log")
	writeFile(t, logPath, "boot 1\nboot 2\n", 0o644)

	sel := &recordingSelector{}
	s := NewLogStreamer(NewOwnerResolver(usersMock(x, y)), sel, nil, 2*time.Second, log.NewNopLogger())

	errDisconnected := errors.New("client gone")
	lines := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.Stream(context.Background(), domain.LogRequest{Script: "vhserver"}, func(line string) error {
			if line == "bye" {
				return errDisconnected
			}
			lines <- line
			return nil
		})
	}()

	assert.Equal(t, "boot 1", recv(t, lines))
	assert.Equal(t, "boot 2", recv(t, lines))

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("player joined\nbye\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, "player joined", recv(t, lines))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("stream did not stop after send failure")
	}
	cmd := sel.last()
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.ProcessState, "tail must be reaped")
}

func TestLogStreamer_StopsOnContextCancel(t *testing.T) {
	requireTail(t)
	x, y := twoHomes(t)
	writeFile(t, filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log"), "hello\n", 0o644)

	sel := &recordingSelector{}
	s := NewLogStreamer(NewOwnerResolver(usersMock(x, y)), sel, nil, 2*time.Second, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	lines := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.Stream(ctx, domain.LogRequest{Script: "vhserver", Lines: 1}, func(line string) error {
			lines <- line
			return nil
		})
	}()

	assert.Equal(t, "hello", recv(t, lines))
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("stream did not stop after cancel")
	}
	assert.NotNil(t, sel.last().ProcessState)
}

func TestLogStreamer_Errors(t *testing.T) {
	x, y := twoHomes(t)
	s := NewLogStreamer(NewOwnerResolver(usersMock(x, y)), directSelector(), nil, time.Second, log.NewNopLogger())
	send := func(string) error { return nil }

	err := s.Stream(context.Background(), domain.LogRequest{Script: "vhserver"}, send)
	require.True(t, apierr.IsEntityNotFoundError(err))
	assert.Contains(t, apierr.ToMyError(err).Message, "Log file not found at ")

	err = s.Stream(context.Background(), domain.LogRequest{Script: "vh;id"}, send)
	assert.True(t, apierr.IsBadParameterError(err))

	err = s.Stream(context.Background(), domain.LogRequest{Script: "vhserver", Lines: 20000}, send)
	assert.True(t, apierr.IsBadParameterError(err))
}

func TestLogStreamer_SudoRefusal(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	x, y := twoHomes(t)
	writeFile(t, filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log"), "hello\n", 0o600)

	refusing := &mock.PrivilegeMock{
		FollowFunc: func(ctx context.Context, user domain.ManagedUser, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, "sh", "-c", "echo 'sudo: a password is required' >&2; exit 1")
		},
		RefusedFunc: func(stderr string) bool {
			return stderr == "sudo: a password is required\n"
		},
	}
	sel := &mock.PrivilegeSelectorMock{
		ForFunc: func(user domain.ManagedUser) interfaces.Privilege { return refusing },
	}
	s := NewLogStreamer(NewOwnerResolver(usersMock(x, y)), sel, nil, time.Second, log.NewNopLogger())

	err := s.Stream(context.Background(), domain.LogRequest{Script: "vhserver"}, func(string) error { return nil })
	assert.True(t, apierr.IsPrivilegeUnavailableError(err), "got %v", err)
	require.Len(t, refusing.FollowCalls(), 1)
	assert.Equal(t, []string{"-n", "10", "-f", "--", filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log")}, refusing.FollowCalls()[0].Args)
	assert.Empty(t, refusing.CommandCalls())
}

func recv(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case line := <-ch:
		return line
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a log line")
		return ""
	}
}
