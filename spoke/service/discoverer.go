package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type scriptDiscoverer struct {
	rules  domain.ScriptRules
	logger log.Logger
}

// NewScriptDiscoverer creates a discoverer that scans the top level of a home directory.
func NewScriptDiscoverer(rules domain.ScriptRules, logger log.Logger) interfaces.ScriptDiscoverer {
	if rules.HeadBytes <= 0 {
		rules.HeadBytes = domain.DefaultHeadBytes
	}
	return &scriptDiscoverer{
		rules:  rules,
		logger: log.With(logger, "component", "script_discoverer"),
	}
}

func (d *scriptDiscoverer) Discover(ctx context.Context, user domain.ManagedUser) domain.Result[[]domain.CandidateScript] {
	res := domain.Result[[]domain.CandidateScript]{Value: []domain.CandidateScript{}}

	entries, err := os.ReadDir(user.HomeDir)
	if err != nil {
		level.Warn(d.logger).Log("msg", "cannot list home directory", "user", user.Username, "home", user.HomeDir, "err", err)
		msg := err.Error()
		if errors.Is(err, os.ErrPermission) {
			msg += " (grant the agent read access to this home directory)"
		}
		res.Diagnose(domain.Diagnostic{Component: "script_discoverer", User: user.Username, Subject: user.HomeDir, Message: msg})
		return res
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		name := entry.Name()
		if !d.rules.Candidate(name) {
			continue
		}
		path := filepath.Join(user.HomeDir, name)
		// follows symlinks; unreadable entries are skipped
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
			continue
		}
		if !d.classify(path, name) {
			continue
		}
		res.Value = append(res.Value, domain.CandidateScript{Name: name, Owner: user.Username})
	}
	return res
}

func (d *scriptDiscoverer) classify(path, name string) bool {
	if d.rules.Classify(name, nil) {
		return true
	}
	head, err := readHead(path, d.rules.HeadBytes)
	if err != nil {
		return false
	}
	return d.rules.Classify(name, head)
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}
