package ports

import "context"

// KeyValueStore defines the contract for the flat key-value namespace backing
// all records. Values are raw JSON documents; typed access lives in the
// repository layer. Concurrent writes to the same key race under
// last-write-wins; the store offers no transactions or conditional writes.
type KeyValueStore interface {
	// Get returns the value for an exact key, or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// GetByPrefix returns all values whose key starts with prefix, ordered
	// by key.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error
}
