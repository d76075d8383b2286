package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
)

// PriceService defines the contract for writing and reading price quotes.
type PriceService interface {
	// WritePrice validates the inputs, derives the spread and stores the
	// quote, returning the stored record.
	WritePrice(ctx context.Context, exchange, pair string, buy, sell, volume, change decimal.Decimal) (*domain.PriceQuote, error)

	// ReadPrice returns the stored quote, or domain.ErrPriceNotFound.
	ReadPrice(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error)
}

// ExchangeService defines the contract for exchange profile management.
type ExchangeService interface {
	// WriteInfo upserts a profile wholesale with a fresh UpdatedAt.
	WriteInfo(ctx context.Context, profile *domain.ExchangeProfile) error

	// ReadInfo returns a profile by name, or domain.ErrExchangeNotFound.
	ReadInfo(ctx context.Context, name string) (*domain.ExchangeProfile, error)

	// ListInfo returns all stored profiles.
	ListInfo(ctx context.Context) ([]*domain.ExchangeProfile, error)
}

// HistoryService defines the contract for intraday price history.
type HistoryService interface {
	// AppendPoint appends a point to the current processing day's bucket
	// and returns the bucket length after the append.
	AppendPoint(ctx context.Context, exchange, pair string, price decimal.Decimal, ts time.Time) (int, error)

	// ReadDay returns the current processing day's bucket, empty if absent.
	ReadDay(ctx context.Context, exchange, pair string) ([]domain.HistoryPoint, error)
}

// PreferenceService defines the contract for session preferences.
type PreferenceService interface {
	WritePreferences(ctx context.Context, sessionID string, values map[string]any) error
	ReadPreferences(ctx context.Context, sessionID string) (*domain.UserPreferences, error)
}

// SeedService defines the contract for demonstration data seeding.
type SeedService interface {
	// Seed writes the sample profile, quote and history. Safe to call
	// repeatedly; each call fully overwrites the seeded keys.
	Seed(ctx context.Context) error
}

// MetricsService defines the contract for operational metrics.
type MetricsService interface {
	// GetMetrics returns current operational metrics.
	GetMetrics(ctx context.Context) (*domain.Metrics, error)

	// RecordWrite counts a stored record of the given kind.
	RecordWrite(kind string)

	// RecordRead counts a served read of the given kind.
	RecordRead(kind string)
}
