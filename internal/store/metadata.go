package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kickitup/internal/dbx"
)

// Well-known metadata keys. The client is single-account, so there is at
// most one token row.
const (
	KeyToken = "token"
)

// Metadata is a key/value repository over the metadata table.
type Metadata struct {
	db dbx.DBTX
}

// NewMetadata binds the repository to a database or transaction handle.
func NewMetadata(db dbx.DBTX) *Metadata {
	return &Metadata{db: db}
}

// Get returns the value for key, or (nil, nil) when the key is absent.
func (r *Metadata) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get metadata[%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (r *Metadata) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set metadata[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Metadata) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete metadata[%s]: %w", key, err)
	}
	return nil
}

// Clear wipes all stored metadata.
func (r *Metadata) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("clear metadata: %w", err)
	}
	return nil
}
