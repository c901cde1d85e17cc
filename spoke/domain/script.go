package domain

import (
	"bytes"
	"strings"
)

// DefaultHeadBytes is how much of a file is inspected for framework signatures.
const DefaultHeadBytes = 500

// ScriptRules decides which home directory entries are game-server scripts.
type ScriptRules struct {
	Suffixes   []string
	Signatures []string
	Exclusions []string
	HeadBytes  int
}

// DefaultScriptRules follows the LinuxGSM layout: `<game>server` scripts next
// to the installer and framework files.
func DefaultScriptRules() ScriptRules {
	return ScriptRules{
		Suffixes:   []string{"server"},
		Signatures: []string{"LinuxGSM", "linuxgsm", "lgsm"},
		Exclusions: []string{"linuxgsm.sh", "uninstall.sh", "lgsm", "lgsm-agent", "spoke", "install_spoke.sh"},
		HeadBytes:  DefaultHeadBytes,
	}
}

// Candidate reports whether name may be inspected at all: not hidden and not excluded.
func (r ScriptRules) Candidate(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	for _, ex := range r.Exclusions {
		if name == ex {
			return false
		}
	}
	return true
}

// Classify reports whether a file is a game-server script given its name and
// the first bytes of its content. It does no I/O.
func (r ScriptRules) Classify(name string, head []byte) bool {
	for _, suffix := range r.Suffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	if r.HeadBytes > 0 && len(head) > r.HeadBytes {
		head = head[:r.HeadBytes]
	}
	for _, sig := range r.Signatures {
		if sig != "" && bytes.Contains(head, []byte(sig)) {
			return true
		}
	}
	return false
}
