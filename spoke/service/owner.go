package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"
)

// OwnerResolver finds which managed user owns a script.
type OwnerResolver struct {
	users interfaces.UserEnumerator
}

// NewOwnerResolver creates an OwnerResolver. Panics on nil users.
func NewOwnerResolver(users interfaces.UserEnumerator) *OwnerResolver {
	return &OwnerResolver{users: helpers.NilPanic(users, "service.owner.go: users is required")}
}

// Resolve returns the owner of script. With an explicit username the user must be
// managed and must not be known to lack the script; otherwise the first managed
// user whose home holds an executable regular file named script wins.
//
// Returns entity_not_found when no owner can be resolved.
func (o *OwnerResolver) Resolve(ctx context.Context, script, username string) (domain.ManagedUser, error) {
	users, err := o.users.ManagedUsers(ctx)
	if err != nil {
		return domain.ManagedUser{}, apierr.NewInternalServerError("cannot enumerate managed users", err)
	}

	if username != "" {
		for _, u := range users.Value {
			if u.Username != username {
				continue
			}
			ok, err := isExecutable(filepath.Join(u.HomeDir, script))
			// an unreadable home is left to the elevated command to judge
			if ok || errors.Is(err, os.ErrPermission) {
				return u, nil
			}
			return domain.ManagedUser{}, apierr.NewEntityNotFoundError(fmt.Sprintf("script %q not found for user %q", script, username), err)
		}
		return domain.ManagedUser{}, apierr.NewEntityNotFoundError(fmt.Sprintf("user %q is not managed", username), nil)
	}

	for _, u := range users.Value {
		if ok, _ := isExecutable(filepath.Join(u.HomeDir, script)); ok {
			return u, nil
		}
	}
	return domain.ManagedUser{}, apierr.NewEntityNotFoundError(fmt.Sprintf("script %q not found for any managed user", script), nil)
}

func isExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0, nil
}
