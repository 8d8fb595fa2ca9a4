// Package store persists small values under string keys in SQLite,
// PostgreSQL or MySQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Entry describes a stored key.
type Entry struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Store provides access to the key-value table.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

const createTableSQLite = `
CREATE TABLE IF NOT EXISTS kv_items (
	item_key   TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

const createTablePostgres = `CREATE TABLE IF NOT EXISTS kv_items (
	item_key   TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const createTableMySQL = `CREATE TABLE IF NOT EXISTS kv_items (
	item_key   VARCHAR(255) NOT NULL PRIMARY KEY,
	item_value LONGTEXT NOT NULL,
	updated_at VARCHAR(32) NOT NULL
)`

const (
	upsertSQL = `INSERT INTO kv_items (item_key, item_value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at`
	upsertMySQL = `INSERT INTO kv_items (item_key, item_value, updated_at) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE item_value = VALUES(item_value), updated_at = VALUES(updated_at)`
)

// New opens the database behind dsn and initializes the schema.
func New(dsn string) (*Store, error) {
	db, dialect, err := OpenDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createSchema(db, dialect); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, dialect: dialect}, nil
}

func createSchema(db *sql.DB, dialect Dialect) error {
	var ddl string
	switch dialect {
	case DialectPostgres:
		ddl = createTablePostgres
	case DialectMySQL:
		ddl = createTableMySQL
	default:
		ddl = createTableSQLite
	}
	_, err := db.Exec(ddl)
	return err
}

// Dialect returns the dialect used by this store.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		Rebind(s.dialect, `SELECT item_value FROM kv_items WHERE item_key = ?`), key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query := upsertSQL
	if s.dialect == DialectMySQL {
		query = upsertMySQL
	}
	_, err := s.db.ExecContext(ctx, Rebind(s.dialect, query), key, string(value), fmtTime(time.Now()))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, Rebind(s.dialect, `DELETE FROM kv_items WHERE item_key = ?`), key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

// Entries lists all stored keys ordered by key.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_key, LENGTH(item_value), updated_at FROM kv_items ORDER BY item_key`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.Key, &e.Size, &ts); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.UpdatedAt, _ = time.Parse(timeFormat, ts)
		results = append(results, e)
	}
	return results, rows.Err()
}

const timeFormat = "2006-01-02T15:04:05Z"

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}
