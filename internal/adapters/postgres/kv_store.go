package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// KVStore implements ports.KeyValueStore over a single kv_store table with a
// text key and a jsonb value. Upserts serialize per key at the row level, so
// concurrent writers to the same key resolve last-write-wins.
type KVStore struct {
	db *DB
}

// NewKVStore creates a new PostgreSQL-backed key-value store.
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the value for an exact key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := s.db.Pool.QueryRow(ctx, query, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	return value, nil
}

// Set stores a value under a key, overwriting any previous value.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := s.db.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	if _, err := s.db.Pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

// GetByPrefix returns all values whose key starts with prefix, ordered by key.
func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	query := `SELECT value FROM kv_store WHERE key LIKE $1 || '%' ORDER BY key`

	rows, err := s.db.Pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating values: %w", err)
	}

	return values, nil
}

// Ping checks if the store is reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Ensure KVStore implements ports.KeyValueStore
var _ ports.KeyValueStore = (*KVStore)(nil)
