package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// HistoryRepository implements ports.HistoryRepository over the key-value
// store. Each calendar day gets an independent bucket; the key scheme
// fragments history naturally so buckets are never explicitly deleted.
type HistoryRepository struct {
	store ports.KeyValueStore
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(store ports.KeyValueStore) ports.HistoryRepository {
	return &HistoryRepository{store: store}
}

// Append loads the day's bucket, evicts past the cap, appends the point and
// writes the bucket back. The read-then-write is not atomic: two concurrent
// appends to the same bucket race under last-write-wins. Accepted limitation.
func (r *HistoryRepository) Append(ctx context.Context, exchange, pair string, day time.Time, point domain.HistoryPoint) (int, error) {
	points, err := r.GetDay(ctx, exchange, pair, day)
	if err != nil {
		return 0, err
	}

	points = domain.AppendHistoryPoint(points, point)

	if err := r.PutDay(ctx, exchange, pair, day, points); err != nil {
		return 0, err
	}

	return len(points), nil
}

// GetDay returns the bucket for the given day, empty if absent.
func (r *HistoryRepository) GetDay(ctx context.Context, exchange, pair string, day time.Time) ([]domain.HistoryPoint, error) {
	value, err := r.store.Get(ctx, HistoryKey(exchange, pair, day))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return []domain.HistoryPoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history bucket: %w", err)
	}

	var points []domain.HistoryPoint
	if err := json.Unmarshal(value, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history bucket: %w", err)
	}

	return points, nil
}

// PutDay replaces the bucket for the given day wholesale.
func (r *HistoryRepository) PutDay(ctx context.Context, exchange, pair string, day time.Time, points []domain.HistoryPoint) error {
	value, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal history bucket: %w", err)
	}

	if err := r.store.Set(ctx, HistoryKey(exchange, pair, day), value); err != nil {
		return fmt.Errorf("failed to store history bucket: %w", err)
	}

	return nil
}

// Ensure HistoryRepository implements ports.HistoryRepository
var _ ports.HistoryRepository = (*HistoryRepository)(nil)
