package interfaces

import (
	"context"

	"lgsmfleet/spoke/domain"
)

// UserEnumerator resolves the OS accounts whose homes are inspected.
//
// Implemented by adapters/osusers. Called by the reconciler on every status pass and by
// the owner resolver for command and log requests.
//
//go:generate moq -stub -out mock/users.go -pkg mock . UserEnumerator
type UserEnumerator interface {
	// ManagedUsers returns the configured accounts.
	// Returns:
	// 1) (result, nil) with unresolvable explicit names reported as diagnostics;
	// 2) (empty, error) when the account database cannot be read at all.
	ManagedUsers(ctx context.Context) (domain.Result[[]domain.ManagedUser], error)
}
