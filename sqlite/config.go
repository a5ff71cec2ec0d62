package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/cwsummary"
)

// Compile-time interface verification.
var _ cwsummary.ConfigStore = (*ConfigStore)(nil)

// ConfigStore implements cwsummary.ConfigStore using SQLite.
// Values are stored per (range, key) pair.
type ConfigStore struct {
	db *DB
}

// NewConfigStore creates a new ConfigStore.
func NewConfigStore(db *DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// GetValue returns the value stored under key for the range.
func (s *ConfigStore) GetValue(ctx context.Context, rangeID, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM range_config
		WHERE range_id = ? AND config_key = ?
	`, rangeID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", cwsummary.Errorf(cwsummary.ENOTFOUND, "config value %q not set for range %q", key, rangeID)
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// StoreValue writes value under key for the range, replacing any previous
// value.
func (s *ConfigStore) StoreValue(ctx context.Context, rangeID, key, value string) error {
	if rangeID == "" {
		return cwsummary.Errorf(cwsummary.EINVALID, "range ID required")
	}
	if key == "" {
		return cwsummary.Errorf(cwsummary.EINVALID, "config key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO range_config (range_id, config_key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (range_id, config_key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, rangeID, key, value, time.Now().UTC().Format(time.RFC3339))

	return err
}
