package interfaces

import (
	"context"

	"lgsmfleet/hub/domain"
)

// SpokeStore persists the spoke registry.
//
//go:generate moq -stub -out mock/store.go -pkg mock . SpokeStore SettingsStore
type SpokeStore interface {
	List(ctx context.Context) ([]domain.Spoke, error)
	// Get returns entity_not_found for an unknown id.
	Get(ctx context.Context, id int64) (domain.Spoke, error)
	// Add inserts the spoke, or updates name and key of the spoke already
	// registered at the same ip and port. The stored spoke is returned.
	Add(ctx context.Context, spoke domain.Spoke) (domain.Spoke, error)
	// Delete returns entity_not_found for an unknown id.
	Delete(ctx context.Context, id int64) error
}

// SettingsStore is a flat key/value store for hub settings.
type SettingsStore interface {
	// Get returns entity_not_found for an unknown key.
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)
	// Put inserts or replaces every given key.
	Put(ctx context.Context, values map[string]string) error
}
