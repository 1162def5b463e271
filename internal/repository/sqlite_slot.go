package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lewtec/galeria/internal/domain"
)

// SQLiteSlot implements domain.Slot as one row of the slots table
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// NewSQLiteSlot creates a slot stored under key. The schema must have been
// migrated with Migrate.
func NewSQLiteSlot(db *sql.DB, key string) *SQLiteSlot {
	return &SQLiteSlot{db: db, key: key}
}

// Read returns the stored value
func (s *SQLiteSlot) Read(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write upserts the stored value
func (s *SQLiteSlot) Write(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`, s.key, value)
	return err
}

// Verify that SQLiteSlot implements domain.Slot
var _ domain.Slot = (*SQLiteSlot)(nil)
