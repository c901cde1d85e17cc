package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"
)

type spokeStore struct {
	db *sql.DB
}

// NewSpokeStore creates a SpokeStore on an opened database.
func NewSpokeStore(db *sql.DB) interfaces.SpokeStore {
	return &spokeStore{db: helpers.NilPanic(db, "sqlite.spoke_store.go: db is required")}
}

func (s *spokeStore) List(ctx context.Context) ([]domain.Spoke, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, ip, port, api_key FROM spokes ORDER BY id`)
	if err != nil {
		return nil, apierr.NewInternalServerError("SQLite list spokes error", fmt.Errorf("can't list spokes, err: %w", err))
	}
	defer rows.Close()

	spokes := []domain.Spoke{}
	for rows.Next() {
		var sp domain.Spoke
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.IP, &sp.Port, &sp.APIKey); err != nil {
			return nil, apierr.NewInternalServerError("SQLite list spokes error", fmt.Errorf("can't scan spoke row, err: %w", err))
		}
		spokes = append(spokes, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, apierr.NewInternalServerError("SQLite list spokes error", fmt.Errorf("can't iterate spokes, err: %w", err))
	}
	return spokes, nil
}

func (s *spokeStore) Get(ctx context.Context, id int64) (domain.Spoke, error) {
	sp := domain.Spoke{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name, ip, port, api_key FROM spokes WHERE id = ?`, id).
		Scan(&sp.ID, &sp.Name, &sp.IP, &sp.Port, &sp.APIKey)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Spoke{}, apierr.NewEntityNotFoundError("Spoke not found", err)
	}
	if err != nil {
		return domain.Spoke{}, apierr.NewInternalServerError("SQLite get spoke error", fmt.Errorf("can't get spoke %d, err: %w", id, err))
	}
	return sp, nil
}

func (s *spokeStore) Add(ctx context.Context, sp domain.Spoke) (domain.Spoke, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spokes (name, ip, port, api_key) VALUES (?, ?, ?, ?)
		ON CONFLICT (ip, port) DO UPDATE SET name = excluded.name, api_key = excluded.api_key`,
		sp.Name, sp.IP, sp.Port, sp.APIKey)
	if err != nil {
		return domain.Spoke{}, apierr.NewInternalServerError("SQLite write spoke error", fmt.Errorf("can't upsert spoke %s:%d, err: %w", sp.IP, sp.Port, err))
	}
	err = s.db.QueryRowContext(ctx, `SELECT id FROM spokes WHERE ip = ? AND port = ?`, sp.IP, sp.Port).Scan(&sp.ID)
	if err != nil {
		return domain.Spoke{}, apierr.NewInternalServerError("SQLite write spoke error", fmt.Errorf("can't read back spoke %s:%d, err: %w", sp.IP, sp.Port, err))
	}
	return sp, nil
}

func (s *spokeStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM spokes WHERE id = ?`, id)
	if err != nil {
		return apierr.NewInternalServerError("SQLite delete spoke error", fmt.Errorf("can't delete spoke %d, err: %w", id, err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apierr.NewEntityNotFoundError("Spoke not found", nil)
	}
	return nil
}
