package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// BlobRepository stores named JSON documents. The application keeps whole
// collection snapshots, the user table and the session pointer as individual
// blobs under well-known keys.
type BlobRepository struct {
	db *sql.DB
}

// NewBlobRepository creates a blob repository backed by the given connection.
func NewBlobRepository(db *sql.DB) *BlobRepository {
	return &BlobRepository{db: db}
}

// Get returns the raw JSON stored under key. The second return value reports
// whether the key exists.
func (r *BlobRepository) Get(key string) (json.RawMessage, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read blob %q: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

// Put stores value under key, replacing any previous document.
func (r *BlobRepository) Put(key string, value json.RawMessage) error {
	_, err := r.db.Exec(
		"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, string(value), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (r *BlobRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

// GetJSON decodes the document under key into out. It reports false without
// touching out when the key is absent.
func (r *BlobRepository) GetJSON(key string, out any) (bool, error) {
	raw, ok, err := r.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode blob %q: %w", key, err)
	}
	return true, nil
}

// PutJSON encodes value and stores it under key.
func (r *BlobRepository) PutJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", key, err)
	}
	return r.Put(key, raw)
}
