package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"lgsmfleet/apierr"
	"lgsmfleet/hub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_CreatesFileAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "hub.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = NewSpokeStore(db).Add(ctx, domain.Spoke{Name: "box", IP: "10.0.0.1", Port: 1, APIKey: "k"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	spokes, err := NewSpokeStore(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, spokes, 1)
}

func TestSpokeStore(t *testing.T) {
	ctx := context.Background()
	store := NewSpokeStore(openTestDB(t))

	t.Run("empty list", func(t *testing.T) {
		spokes, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, spokes)
		assert.NotNil(t, spokes)
	})

	var first domain.Spoke
	t.Run("add assigns ids", func(t *testing.T) {
		var err error
		first, err = store.Add(ctx, domain.Spoke{Name: "alpha", IP: "10.0.0.1", Port: 49950, APIKey: "ka"})
		require.NoError(t, err)
		assert.NotZero(t, first.ID)

		second, err := store.Add(ctx, domain.Spoke{Name: "bravo", IP: "10.0.0.2", Port: 49950, APIKey: "kb"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("re-adding the same address updates in place", func(t *testing.T) {
		again, err := store.Add(ctx, domain.Spoke{Name: "alpha-renamed", IP: "10.0.0.1", Port: 49950, APIKey: "rotated"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)

		got, err := store.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.Spoke{ID: first.ID, Name: "alpha-renamed", IP: "10.0.0.1", Port: 49950, APIKey: "rotated"}, got)

		spokes, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, spokes, 2)
	})

	t.Run("same ip other port is another spoke", func(t *testing.T) {
		other, err := store.Add(ctx, domain.Spoke{Name: "alpha-2", IP: "10.0.0.1", Port: 49951, APIKey: "k2"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
		require.NoError(t, store.Delete(ctx, other.ID))
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := store.Get(ctx, 9999)
		assert.True(t, apierr.IsEntityNotFoundError(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, first.ID))
		_, err := store.Get(ctx, first.ID)
		assert.True(t, apierr.IsEntityNotFoundError(err))

		err = store.Delete(ctx, first.ID)
		assert.True(t, apierr.IsEntityNotFoundError(err))
	})
}

func TestSpokeStore_ClosedDB(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewSpokeStore(db).List(context.Background())
	assert.True(t, apierr.IsInternalServerError(err))
}

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(openTestDB(t))

	_, err := store.Get(ctx, domain.SettingDiscordWebhook)
	assert.True(t, apierr.IsEntityNotFoundError(err))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, store.Put(ctx, map[string]string{
		domain.SettingDiscordWebhook: "https://discord.example/api/webhooks/1",
		"theme":                      "dark",
	}))
	require.NoError(t, store.Put(ctx, map[string]string{"theme": "light"}))

	v, err := store.Get(ctx, domain.SettingDiscordWebhook)
	require.NoError(t, err)
	assert.Equal(t, "https://discord.example/api/webhooks/1", v)

	all, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		domain.SettingDiscordWebhook: "https://discord.example/api/webhooks/1",
		"theme":                      "light",
	}, all)
}
