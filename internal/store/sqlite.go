package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apibillme/cache"
	_ "github.com/mattn/go-sqlite3"
)

const kvSchemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INT NOT NULL
);
`

const hotTTL = 10 * time.Minute

// SQLiteStore implements domain.Store on a single sqlite table with a
// small in-process hot tier in front of it.
type SQLiteStore struct {
	conn *sql.DB
	hot  cache.Cache
}

// NewSQLiteStore opens (or creates) the database file and applies the schema
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(kvSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &SQLiteStore{
		conn: conn,
		hot:  cache.New(256, cache.WithTTL(hotTTL)),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Get returns the value stored under key
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	if v, ok := s.hot.Get(key); ok {
		// nil marks a deleted key
		data, _ := v.([]byte)
		if data == nil {
			return nil, false, nil
		}
		return clone(data), true, nil
	}

	var data []byte
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: get %q: %w", key, err)
	}

	data = clone(data)
	s.hot.Set(key, data)
	return clone(data), true, nil
}

// Set replaces the value under key
func (s *SQLiteStore) Set(key string, value []byte) error {
	data := clone(value)
	_, err := s.conn.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	s.hot.Set(key, data)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.conn.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	s.hot.Set(key, []byte(nil))
	return nil
}
