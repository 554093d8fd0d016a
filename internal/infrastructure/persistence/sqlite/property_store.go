package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

const (
	getSettingQuery = `SELECT value FROM settings WHERE section = ? AND key = ?`

	setSettingQuery = `INSERT INTO settings (section, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (section, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	deleteSettingQuery = `DELETE FROM settings WHERE section = ? AND key = ?`

	listKeysQuery = `SELECT key FROM settings WHERE section = ? ORDER BY key`
)

type propertyStore struct {
	db *sql.DB
}

// NewPropertyStore creates a SQLite-backed settings store. Values are kept as
// JSON text, so numbers come back as float64 and arrays as []any.
func NewPropertyStore(db *sql.DB) repository.PropertyStore {
	return &propertyStore{db: db}
}

func (s *propertyStore) Get(ctx context.Context, section, key string) (any, bool, error) {
	var text string
	err := s.db.QueryRowContext(ctx, getSettingQuery, section, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s.%s: %w", section, key, err)
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s.%s: %w", section, key, err)
	}
	return value, true, nil
}

func (s *propertyStore) Set(ctx context.Context, section, key string, value any) error {
	logging.FromContext(ctx).Debug().Str("section", section).Str("key", key).Msg("storing setting")

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s.%s: %w", section, key, err)
	}
	if _, err := s.db.ExecContext(ctx, setSettingQuery, section, key, string(data)); err != nil {
		return fmt.Errorf("failed to set %s.%s: %w", section, key, err)
	}
	return nil
}

func (s *propertyStore) Delete(ctx context.Context, section, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteSettingQuery, section, key); err != nil {
		return fmt.Errorf("failed to delete %s.%s: %w", section, key, err)
	}
	return nil
}

func (s *propertyStore) Keys(ctx context.Context, section string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, listKeysQuery, section)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", section, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
