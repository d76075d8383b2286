package ports

import (
	"context"

	"github.com/exchangethb/exchange-data-service/internal/domain"
)

// MarketDataAPI defines the consumer-side contract against the data service.
type MarketDataAPI interface {
	// Initialize asks the service to seed its demonstration data.
	Initialize(ctx context.Context) error

	// GetPrice fetches the current quote for (exchange, pair).
	GetPrice(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error)

	// GetInfo fetches an exchange profile by name.
	GetInfo(ctx context.Context, name string) (*domain.ExchangeProfile, error)

	// GetHistory fetches today's history bucket for (exchange, pair).
	GetHistory(ctx context.Context, exchange, pair string) ([]domain.HistoryPoint, error)
}
