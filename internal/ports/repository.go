package ports

import (
	"context"
	"time"

	"github.com/exchangethb/exchange-data-service/internal/domain"
)

// PriceRepository defines the contract for price quote persistence.
type PriceRepository interface {
	// Put stores a quote, overwriting any previous quote for the pair.
	Put(ctx context.Context, quote *domain.PriceQuote) error

	// Get retrieves the quote for (exchange, pair), or domain.ErrPriceNotFound.
	Get(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error)
}

// ExchangeRepository defines the contract for exchange profile persistence.
type ExchangeRepository interface {
	// Put upserts a profile wholesale.
	Put(ctx context.Context, profile *domain.ExchangeProfile) error

	// Get retrieves a profile by name, or domain.ErrExchangeNotFound.
	Get(ctx context.Context, name string) (*domain.ExchangeProfile, error)

	// List returns all stored profiles ordered by key.
	List(ctx context.Context) ([]*domain.ExchangeProfile, error)
}

// HistoryRepository defines the contract for per-day price history buckets.
type HistoryRepository interface {
	// Append adds a point to the bucket for the given day, evicting the
	// oldest entries past the cap. Returns the new bucket length. The
	// read-then-write is not atomic: concurrent appends to the same bucket
	// race under last-write-wins.
	Append(ctx context.Context, exchange, pair string, day time.Time, point domain.HistoryPoint) (int, error)

	// GetDay returns the bucket for the given day, empty if absent.
	GetDay(ctx context.Context, exchange, pair string, day time.Time) ([]domain.HistoryPoint, error)

	// PutDay replaces the bucket for the given day wholesale.
	PutDay(ctx context.Context, exchange, pair string, day time.Time, points []domain.HistoryPoint) error
}

// PreferenceRepository defines the contract for per-session preferences.
type PreferenceRepository interface {
	// Put upserts preferences for a session wholesale.
	Put(ctx context.Context, sessionID string, prefs *domain.UserPreferences) error

	// Get retrieves preferences for a session. Absent sessions return an
	// empty record, never an error.
	Get(ctx context.Context, sessionID string) (*domain.UserPreferences, error)
}
