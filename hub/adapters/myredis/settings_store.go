package myredis

import (
	"context"
	"errors"
	"fmt"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/interfaces"

	"github.com/go-redis/redis/v8"
)

const settingsKey = "settings"

type settingsStore struct {
	client redis.UniversalClient
}

// NewSettingsStore creates a SettingsStore backed by the "settings" hash.
func NewSettingsStore(client redis.UniversalClient) interfaces.SettingsStore {
	return &settingsStore{client: helpers.NilPanic(client, "myredis.settings_store.go: client is required")}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.HGet(ctx, settingsKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", apierr.NewEntityNotFoundError("Setting not found", err)
	}
	if err != nil {
		return "", apierr.NewInternalServerError("Redis read setting error", fmt.Errorf("can't read setting %q, err: %w", key, err))
	}
	return v, nil
}

func (s *settingsStore) All(ctx context.Context) (map[string]string, error) {
	all, err := s.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, apierr.NewInternalServerError("Redis read settings error", fmt.Errorf("can't read settings, err: %w", err))
	}
	return all, nil
}

func (s *settingsStore) Put(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	pairs := make([]string, 0, 2*len(values))
	for k, v := range values {
		pairs = append(pairs, k, v)
	}
	if err := s.client.HSet(ctx, settingsKey, pairs).Err(); err != nil {
		return apierr.NewInternalServerError("Redis write settings error", fmt.Errorf("can't write settings, err: %w", err))
	}
	return nil
}
