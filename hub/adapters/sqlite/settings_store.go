package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/interfaces"
)

type settingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a SettingsStore on an opened database.
func NewSettingsStore(db *sql.DB) interfaces.SettingsStore {
	return &settingsStore{db: helpers.NilPanic(db, "sqlite.settings_store.go: db is required")}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apierr.NewEntityNotFoundError("Setting not found", err)
	}
	if err != nil {
		return "", apierr.NewInternalServerError("SQLite get setting error", fmt.Errorf("can't get setting %q, err: %w", key, err))
	}
	return v, nil
}

func (s *settingsStore) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, apierr.NewInternalServerError("SQLite list settings error", fmt.Errorf("can't list settings, err: %w", err))
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, apierr.NewInternalServerError("SQLite list settings error", fmt.Errorf("can't scan setting row, err: %w", err))
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, apierr.NewInternalServerError("SQLite list settings error", fmt.Errorf("can't iterate settings, err: %w", err))
	}
	return out, nil
}

// Put writes all values in one transaction.
func (s *settingsStore) Put(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apierr.NewInternalServerError("SQLite write settings error", fmt.Errorf("can't begin transaction, err: %w", err))
	}
	defer tx.Rollback()

	for k, v := range values {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, k, v); err != nil {
			return apierr.NewInternalServerError("SQLite write settings error", fmt.Errorf("can't write setting %q, err: %w", k, err))
		}
	}
	if err := tx.Commit(); err != nil {
		return apierr.NewInternalServerError("SQLite write settings error", fmt.Errorf("can't commit settings, err: %w", err))
	}
	return nil
}
