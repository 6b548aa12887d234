package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/logging"
)

const (
	getPreference    = `SELECT value FROM preferences WHERE key = ?`
	setPreference    = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreference = `DELETE FROM preferences WHERE key = ?`
	listPreferences  = `SELECT key, value FROM preferences ORDER BY key`
)

// PreferenceRepository is a port.KeyValueStore backed by the preferences table.
type PreferenceRepository struct {
	provider port.DatabaseProvider
}

var (
	_ port.KeyValueStore  = (*PreferenceRepository)(nil)
	_ port.KeyValueLister = (*PreferenceRepository)(nil)
)

// NewPreferenceRepository creates a repository that opens the database
// through provider on first use.
func NewPreferenceRepository(provider port.DatabaseProvider) *PreferenceRepository {
	return &PreferenceRepository{provider: provider}
}

// Get returns the value stored under key; ok is false when no row exists.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts key and bumps updated_at.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("setting preference")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, setPreference, key, value); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Deleting a missing key is a no-op.
func (r *PreferenceRepository) Remove(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deletePreference, key); err != nil {
		return fmt.Errorf("remove preference %q: %w", key, err)
	}
	return nil
}

// All returns every stored preference, used by "config overrides".
func (r *PreferenceRepository) All(ctx context.Context) (map[string]string, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listPreferences)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}
