package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// ExchangeRepository implements ports.ExchangeRepository over the key-value store.
type ExchangeRepository struct {
	store ports.KeyValueStore
}

// NewExchangeRepository creates a new exchange profile repository.
func NewExchangeRepository(store ports.KeyValueStore) ports.ExchangeRepository {
	return &ExchangeRepository{store: store}
}

// Put upserts a profile wholesale under exchange:{name}.
func (r *ExchangeRepository) Put(ctx context.Context, profile *domain.ExchangeProfile) error {
	value, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal exchange profile: %w", err)
	}

	if err := r.store.Set(ctx, ExchangeKey(profile.Name), value); err != nil {
		return fmt.Errorf("failed to store exchange profile: %w", err)
	}

	return nil
}

// Get retrieves a profile by name.
func (r *ExchangeRepository) Get(ctx context.Context, name string) (*domain.ExchangeProfile, error) {
	value, err := r.store.Get(ctx, ExchangeKey(name))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, domain.ErrExchangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange profile: %w", err)
	}

	var profile domain.ExchangeProfile
	if err := json.Unmarshal(value, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exchange profile: %w", err)
	}

	return &profile, nil
}

// List returns all stored profiles via a prefix scan.
func (r *ExchangeRepository) List(ctx context.Context) ([]*domain.ExchangeProfile, error) {
	values, err := r.store.GetByPrefix(ctx, exchangePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange profiles: %w", err)
	}

	profiles := make([]*domain.ExchangeProfile, 0, len(values))
	for _, value := range values {
		var profile domain.ExchangeProfile
		if err := json.Unmarshal(value, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exchange profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

// Ensure ExchangeRepository implements ports.ExchangeRepository
var _ ports.ExchangeRepository = (*ExchangeRepository)(nil)
