package domain

import (
	"fmt"
	"strings"

	"lgsmfleet/apierr"
)

const (
	MinLogLines     = 1
	MaxLogLines     = 10000
	DefaultLogLines = 100
)

// DefaultActions is the built-in command allow-list.
var DefaultActions = []string{"start", "stop", "restart", "update", "backup"}

// forbiddenScriptChars are rejected anywhere in a script name.
const forbiddenScriptChars = "/\\;|&$`<>(){}[]*?!~'\"#\x00\n\r\t "

// ValidateScriptName rejects names that could escape the home directory or be
// interpreted by a shell.
func ValidateScriptName(name string) error {
	if name == "" {
		return apierr.NewBadParameterError("script name is required", nil)
	}
	if strings.HasPrefix(name, ".") {
		return apierr.NewBadParameterError("invalid script name", fmt.Errorf("script %q starts with a dot", name))
	}
	if i := strings.IndexAny(name, forbiddenScriptChars); i >= 0 {
		return apierr.NewBadParameterError("invalid script name", fmt.Errorf("script %q contains %q", name, name[i]))
	}
	return nil
}

// ValidateLines checks the requested tail length.
func ValidateLines(lines int) error {
	if lines < MinLogLines || lines > MaxLogLines {
		return apierr.NewBadParameterError(fmt.Sprintf("lines must be between %d and %d", MinLogLines, MaxLogLines), nil)
	}
	return nil
}

// ActionSet is the allow-list of command actions.
type ActionSet map[string]struct{}

// NewActionSet builds the allow-list from the defaults plus extra configured actions.
func NewActionSet(extra ...string) ActionSet {
	set := make(ActionSet, len(DefaultActions)+len(extra))
	for _, a := range DefaultActions {
		set[a] = struct{}{}
	}
	for _, a := range extra {
		a = strings.TrimSpace(a)
		if a != "" {
			set[a] = struct{}{}
		}
	}
	return set
}

// Validate returns bad_parameter for actions outside the allow-list.
func (s ActionSet) Validate(action string) error {
	if _, ok := s[action]; !ok {
		return apierr.NewBadParameterError(fmt.Sprintf("invalid action %q", action), nil)
	}
	return nil
}
