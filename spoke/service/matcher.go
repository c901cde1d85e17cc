package service

import (
	"strings"

	"lgsmfleet/spoke/domain"
)

// MatchesSession reports whether a session name belongs to script: the exact
// name or the name followed by "-" and an instance suffix.
func MatchesSession(script, session string) bool {
	return session == script || strings.HasPrefix(session, script+"-")
}

// MatchProcess reports whether any process owned by uid runs script inside tmux.
func MatchProcess(procs []domain.ProcessInfo, uid int, script string) bool {
	for _, p := range procs {
		if p.UID != uid {
			continue
		}
		if strings.Contains(p.Cmdline, script) && strings.Contains(p.Cmdline, "tmux") {
			return true
		}
	}
	return false
}

// ReconcileUser classifies one user's scripts against their live sessions.
//
// Scripts first claim a session with exactly their name, then, in script order,
// the first unconsumed session prefixed "<script>-". Scripts without a session
// are running only if corroborate says so. Sessions no script consumed are
// reported as running zombies.
func ReconcileUser(user string, scripts []domain.CandidateScript, sessions []domain.LiveSession, corroborate func(script string) bool) []domain.Instance {
	consumed := make([]bool, len(sessions))
	claimed := make([]int, len(scripts))
	for i := range claimed {
		claimed[i] = -1
	}

	claim := func(match func(script, session string) bool) {
		for i, script := range scripts {
			if claimed[i] >= 0 {
				continue
			}
			for j, s := range sessions {
				if consumed[j] || !match(script.Name, s.Name) {
					continue
				}
				consumed[j] = true
				claimed[i] = j
				break
			}
		}
	}
	claim(func(script, session string) bool { return session == script })
	claim(MatchesSession)

	out := make([]domain.Instance, 0, len(scripts)+len(sessions))
	for i, script := range scripts {
		inst := domain.Instance{User: user, Script: script.Name, Status: domain.StatusStopped}
		switch {
		case claimed[i] >= 0:
			inst.Session = sessions[claimed[i]].Name
			inst.Status = domain.StatusRunning
		case corroborate != nil && corroborate(script.Name):
			inst.Status = domain.StatusRunning
		}
		out = append(out, inst)
	}

	for i, s := range sessions {
		if consumed[i] {
			continue
		}
		out = append(out, domain.Instance{
			User:     user,
			Script:   s.Name,
			Session:  s.Name,
			Status:   domain.StatusRunning,
			IsZombie: true,
		})
	}
	return out
}
