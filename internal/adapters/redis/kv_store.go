package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/exchangethb/exchange-data-service/internal/config"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// KVStore implements ports.KeyValueStore over Redis. Records carry no TTL:
// they live until overwritten, matching the store's last-write-wins contract.
type KVStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewKVStore connects to Redis and verifies the connection.
func NewKVStore(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("redis connection established", "addr", cfg.Addr, "db", cfg.DB)

	return &KVStore{
		client: client,
		logger: logger.With("component", "redis"),
	}, nil
}

// Get returns the value for an exact key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores a value under a key, overwriting any previous value.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns all values whose key starts with prefix, ordered by key.
func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
	}

	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	raw, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch values for prefix %q: %w", prefix, err)
	}

	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		// Keys deleted between SCAN and MGET come back nil.
		str, ok := v.(string)
		if !ok {
			continue
		}
		values = append(values, []byte(str))
	}

	return values, nil
}

// Ping checks if the store is reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection.
func (s *KVStore) Close() error {
	return s.client.Close()
}

// Ensure KVStore implements ports.KeyValueStore
var _ ports.KeyValueStore = (*KVStore)(nil)
