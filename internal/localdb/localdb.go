// Package localdb provides durable local storage for the current user,
// backed by a single-file SQLite database holding whole JSON values under
// fixed string keys.
package localdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"marketcart/internal/migrate"
)

// DB wraps the SQLite handle behind a key/value contract. Values are read and
// written wholesale; there are no partial-key updates.
type DB struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the local database at path and applies
// embedded migrations.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate.Apply(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &DB{sqlDB: sqlDB}, nil
}

// Close closes the underlying handle.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Get returns the value stored under key and whether it was present.
func (d *DB) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv_store WHERE key = ?`
	var value string
	err := d.sqlDB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (d *DB) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO kv_store (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`
	_, err := d.sqlDB.ExecContext(ctx, q, key, value, time.Now().UTC().UnixMilli())
	return err
}

// Delete removes key if present.
func (d *DB) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_store WHERE key = ?`
	_, err := d.sqlDB.ExecContext(ctx, q, key)
	return err
}
