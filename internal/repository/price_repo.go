package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// PriceRepository implements ports.PriceRepository over the key-value store.
type PriceRepository struct {
	store ports.KeyValueStore
}

// NewPriceRepository creates a new price repository.
func NewPriceRepository(store ports.KeyValueStore) ports.PriceRepository {
	return &PriceRepository{store: store}
}

// Put stores a quote under price:{exchange}:{pair}, last write wins.
func (r *PriceRepository) Put(ctx context.Context, quote *domain.PriceQuote) error {
	value, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal price quote: %w", err)
	}

	if err := r.store.Set(ctx, PriceKey(quote.Exchange, quote.Pair), value); err != nil {
		return fmt.Errorf("failed to store price quote: %w", err)
	}

	return nil
}

// Get retrieves the quote for (exchange, pair).
func (r *PriceRepository) Get(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error) {
	value, err := r.store.Get(ctx, PriceKey(exchange, pair))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, domain.ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price quote: %w", err)
	}

	var quote domain.PriceQuote
	if err := json.Unmarshal(value, &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal price quote: %w", err)
	}

	return &quote, nil
}

// Ensure PriceRepository implements ports.PriceRepository
var _ ports.PriceRepository = (*PriceRepository)(nil)
