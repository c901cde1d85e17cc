// Package osusers resolves the managed OS accounts from the system account database.
package osusers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ModeAuto selects every real user with a home under the home root.
const ModeAuto = "auto"

// Config controls which accounts are managed.
type Config struct {
	// Users is "auto" or a comma-separated list of usernames.
	Users      string
	PasswdPath string
	HomeRoot   string
	MinUID     int
}

// LookupFunc resolves one username; os/user.Lookup in production.
type LookupFunc func(username string) (*user.User, error)

type enumerator struct {
	cfg    Config
	lookup LookupFunc
	logger log.Logger
}

// NewEnumerator creates the account enumerator. A nil lookup defaults to os/user.Lookup.
func NewEnumerator(cfg Config, lookup LookupFunc, logger log.Logger) interfaces.UserEnumerator {
	if lookup == nil {
		lookup = user.Lookup
	}
	if cfg.PasswdPath == "" {
		cfg.PasswdPath = "/etc/passwd"
	}
	if cfg.HomeRoot == "" {
		cfg.HomeRoot = "/home"
	}
	return &enumerator{
		cfg:    cfg,
		lookup: lookup,
		logger: log.With(logger, "component", "user_enumerator"),
	}
}

func (e *enumerator) ManagedUsers(ctx context.Context) (domain.Result[[]domain.ManagedUser], error) {
	mode := strings.TrimSpace(e.cfg.Users)
	if mode == "" || strings.EqualFold(mode, ModeAuto) {
		return e.auto()
	}
	return e.explicit(mode), nil
}

func (e *enumerator) auto() (domain.Result[[]domain.ManagedUser], error) {
	f, err := os.Open(e.cfg.PasswdPath)
	if err != nil {
		return domain.Result[[]domain.ManagedUser]{}, fmt.Errorf("open account database %s: %w", e.cfg.PasswdPath, err)
	}
	defer f.Close()

	users, err := ParsePasswd(f)
	if err != nil {
		return domain.Result[[]domain.ManagedUser]{}, fmt.Errorf("read account database %s: %w", e.cfg.PasswdPath, err)
	}

	out := make([]domain.ManagedUser, 0, len(users))
	for _, u := range users {
		if u.UID < e.cfg.MinUID || !underRoot(u.HomeDir, e.cfg.HomeRoot) {
			continue
		}
		out = append(out, u)
	}
	return domain.Result[[]domain.ManagedUser]{Value: out}, nil
}

func (e *enumerator) explicit(list string) domain.Result[[]domain.ManagedUser] {
	var res domain.Result[[]domain.ManagedUser]
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		u, err := e.lookup(name)
		if err != nil {
			level.Warn(e.logger).Log("msg", "managed user not found, skipping", "user", name, "err", err)
			res.Diagnose(domain.Diagnostic{Component: "user_enumerator", User: name, Message: err.Error()})
			continue
		}
		mu, err := fromOSUser(u)
		if err != nil {
			level.Warn(e.logger).Log("msg", "managed user has non-numeric ids, skipping", "user", name, "err", err)
			res.Diagnose(domain.Diagnostic{Component: "user_enumerator", User: name, Message: err.Error()})
			continue
		}
		res.Value = append(res.Value, mu)
	}
	return res
}

// ParsePasswd reads passwd(5) lines. Comments and malformed lines are skipped.
func ParsePasswd(r io.Reader) ([]domain.ManagedUser, error) {
	var out []domain.ManagedUser
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 7 {
			continue
		}
		uid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		gid, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		out = append(out, domain.ManagedUser{
			Username: fields[0],
			UID:      uid,
			GID:      gid,
			HomeDir:  fields[5],
		})
	}
	return out, sc.Err()
}

func fromOSUser(u *user.User) (domain.ManagedUser, error) {
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return domain.ManagedUser{}, fmt.Errorf("uid %q: %w", u.Uid, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return domain.ManagedUser{}, fmt.Errorf("gid %q: %w", u.Gid, err)
	}
	return domain.ManagedUser{Username: u.Username, UID: uid, GID: gid, HomeDir: u.HomeDir}, nil
}

func underRoot(home, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(home))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, "../")
}

// CurrentIdentity returns the agent's effective user.
func CurrentIdentity() (domain.Identity, error) {
	u, err := user.Current()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("resolve current user: %w", err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("current uid %q: %w", u.Uid, err)
	}
	return domain.Identity{Username: u.Username, UID: uid}, nil
}
