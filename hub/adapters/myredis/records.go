package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lgsmfleet/apierr"

	"github.com/go-redis/redis/v8"
)

// records keeps values of one type under "<prefix>:<key>" without expiry.
type records[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

func newRecords[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *records[T] {
	return &records[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *records[T]) write(ctx context.Context, key string, item T) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return apierr.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}
	if err := r.client.Set(ctx, r.key(key), bytes, 0).Err(); err != nil {
		return apierr.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}
	return nil
}

func (r *records[T]) read(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return r.zero, apierr.NewEntityNotFoundError("Entity not found", err)
	}
	if err != nil {
		return r.zero, apierr.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, apierr.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}
	return item, nil
}

func (r *records[T]) delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return apierr.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

// list returns every readable value under the prefix; undecodable entries are skipped.
func (r *records[T]) list(ctx context.Context) ([]T, error) {
	fullKeys, err := r.client.Keys(ctx, r.prefix+":*").Result()
	if err != nil {
		return nil, apierr.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}

	prefixWithColon := r.prefix + ":"
	items := make([]T, 0, len(fullKeys))
	for _, k := range fullKeys {
		if !strings.HasPrefix(k, prefixWithColon) {
			continue
		}
		item, err := r.read(ctx, strings.TrimPrefix(k, prefixWithColon))
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *records[T]) key(key string) string {
	return r.prefix + ":" + key
}
