package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Persisted keys. One KV file is one profile, the same scope the keys
// had in browser storage.
const (
	KeyInventory   = "pharmacy-inventory"
	KeyOrders      = "pharmacy-orders"
	KeyMessages    = "pharmacy-messages"
	KeyDeviceID    = "pharmacy-device-id"
	KeySync        = "pharmacy-cloud-sync"
	KeySyncVersion = "pharmacy-sync-version"
	KeyDarkMode    = "dark-mode"
	KeyAdminAuth   = "admin-auth"

	keyCartPrefix = "pharmacy-cart:"
)

// KV is a single-file key-value store backed by SQLite. Values are JSON
// or plain strings; a whole entity list is persisted under one key.
type KV struct {
	db *sql.DB
}

// OpenKV opens (and if needed creates) the store file at path.
func OpenKV(path string) (*KV, error) {
	if path == "" {
		return nil, errors.New("kv path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// Write transactions take the file lock up front and concurrent
	// writers wait for it instead of erroring out.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv schema: %w", err)
	}

	return &KV{db: db}, nil
}

func (s *KV) Close() error {
	return s.db.Close()
}

// execer is satisfied by both the pooled handle and an open transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

func setString(db execer, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func getString(db execer, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

// SetString stores a raw string value under key.
func (s *KV) SetString(key, value string) error {
	return setString(s.db, key, value)
}

// GetString returns the raw value under key and whether it was present.
func (s *KV) GetString(key string) (string, bool, error) {
	return getString(s.db, key)
}

// SetJSON marshals v and stores it under key.
func (s *KV) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %q: %w", key, err)
	}
	return s.SetString(key, string(data))
}

// GetJSON unmarshals the value under key into v. Absent keys and corrupt
// values both report "no data": a parse failure is logged and swallowed
// so callers fall back to defaults instead of failing.
func (s *KV) GetJSON(key string, v any) (bool, error) {
	raw, ok, err := s.GetString(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("⚠️ Corrupt data under %q, treating as empty: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Tx is a set of KV operations applied as one atomic unit.
type Tx struct {
	tx *sql.Tx
}

// SetString stores a raw string value under key within the transaction.
func (t *Tx) SetString(key, value string) error {
	return setString(t.tx, key, value)
}

// GetString reads key within the transaction, seeing its own writes.
func (t *Tx) GetString(key string) (string, bool, error) {
	return getString(t.tx, key)
}

// SetJSON marshals v and stores it under key within the transaction.
func (t *Tx) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %q: %w", key, err)
	}
	return setString(t.tx, key, string(data))
}

// Update runs fn inside a single write transaction: everything fn reads
// and writes happens atomically, and concurrent Updates over the same
// file serialize against each other.
func (s *KV) Update(fn func(tx *Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("kv begin: %w", err)
	}
	if err := fn(&Tx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kv commit: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KV) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// CartKey returns the persisted cart key for one device.
func CartKey(deviceID string) string {
	return keyCartPrefix + deviceID
}
