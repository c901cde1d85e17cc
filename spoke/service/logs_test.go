package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"lgsmfleet/apierr"
	"lgsmfleet/spoke/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestLogPaths(t *testing.T) {
	assert.Equal(t, []string{
		"/home/vh/log/console/vhserver-console.log",
		"/home/vh/log/script/vhserver-script.log",
		"/home/vh/log/vhserver-console.log",
	}, LogPaths("/home/vh", "vhserver", nil))
	assert.Equal(t, []string{"/home/vh/logs/vhserver.txt"}, LogPaths("/home/vh", "vhserver", []string{"logs/{script}.txt"}))
}

func TestTailLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{name: "fewer_than_n", input: "a\nb\n", n: 5, want: []string{"a", "b"}},
		{name: "exactly_n", input: "a\nb\nc\n", n: 3, want: []string{"a", "b", "c"}},
		{name: "more_than_n", input: "a\nb\nc\nd\n", n: 2, want: []string{"c", "d"}},
		{name: "no_trailing_newline", input: "a\nb", n: 1, want: []string{"b"}},
		{name: "crlf", input: "a\r\nb\r\n", n: 2, want: []string{"a", "b"}},
		{name: "empty", input: "", n: 3, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TailLines(strings.NewReader(tt.input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogReader_Read(t *testing.T) {
	x, y := twoHomes(t)
	writeFile(t, filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log"), numberedLines(250), 0o644)
	writeFile(t, filepath.Join(x.HomeDir, "csgoserver"), "#!/bin/sh\n", 0o755)
	writeFile(t, filepath.Join(x.HomeDir, "log", "script", "csgoserver-script.log"), "only script log\n", 0o644)
	writeFile(t, filepath.Join(x.HomeDir, "rustserver"), "#!/bin/sh\n", 0o755)

	r := NewLogReader(NewOwnerResolver(usersMock(x, y)), directSelector(), nil, log.NewNopLogger())

	t.Run("default_tail", func(t *testing.T) {
		tail, err := r.Read(context.Background(), domain.LogRequest{Script: "vhserver", Lines: domain.DefaultLogLines})
		require.NoError(t, err)
		assert.Equal(t, "y", tail.User)
		assert.Equal(t, filepath.Join(y.HomeDir, "log", "console", "vhserver-console.log"), tail.Path)
		require.Len(t, tail.Lines, 100)
		assert.Equal(t, "line 151", tail.Lines[0])
		assert.Equal(t, "line 250", tail.Lines[99])
	})

	t.Run("max_lines", func(t *testing.T) {
		tail, err := r.Read(context.Background(), domain.LogRequest{Script: "vhserver", Lines: domain.MaxLogLines})
		require.NoError(t, err)
		assert.Len(t, tail.Lines, 250)
	})

	t.Run("second_pattern", func(t *testing.T) {
		tail, err := r.Read(context.Background(), domain.LogRequest{Script: "csgoserver", Lines: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"only script log"}, tail.Lines)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := r.Read(context.Background(), domain.LogRequest{Script: "rustserver", Lines: 10})
		require.True(t, apierr.IsEntityNotFoundError(err))
		assert.Contains(t, apierr.ToMyError(err).Message, "Log file not found at "+filepath.Join(x.HomeDir, "log", "console", "rustserver-console.log"))
	})

	t.Run("unknown_script", func(t *testing.T) {
		_, err := r.Read(context.Background(), domain.LogRequest{Script: "ark", Lines: 10})
		assert.True(t, apierr.IsEntityNotFoundError(err))
	})

	for _, lines := range []int{0, -1, 10001} {
		t.Run(fmt.Sprintf("lines_%d", lines), func(t *testing.T) {
			_, err := r.Read(context.Background(), domain.LogRequest{Script: "vhserver", Lines: lines})
			assert.True(t, apierr.IsBadParameterError(err))
		})
	}

	for _, script := range []string{"../y/vhserver", ".vhserver", "vh|cat", `vh\x`} {
		t.Run("invalid_"+script, func(t *testing.T) {
			_, err := r.Read(context.Background(), domain.LogRequest{Script: script, Lines: 10})
			assert.True(t, apierr.IsBadParameterError(err))
		})
	}
}
