package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// PriceService implements the ports.PriceService interface
type PriceService struct {
	repo    ports.PriceRepository
	metrics ports.MetricsService
	logger  *slog.Logger
}

// NewPriceService creates a new price service
func NewPriceService(repo ports.PriceRepository, metrics ports.MetricsService, logger *slog.Logger) *PriceService {
	return &PriceService{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With("component", "price_service"),
	}
}

// WritePrice validates the inputs, derives the spread, stamps timestamps and
// stores the quote. Returns the stored record.
func (s *PriceService) WritePrice(ctx context.Context, exchange, pair string, buy, sell, volume, change decimal.Decimal) (*domain.PriceQuote, error) {
	quote, err := domain.NewPriceQuote(exchange, pair, buy, sell, volume, change)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Put(ctx, quote); err != nil {
		s.logger.Error("failed to store price quote",
			"exchange", quote.Exchange, "pair", quote.Pair, "error", err)
		return nil, domain.ErrStorage
	}

	s.metrics.RecordWrite("price")

	s.logger.Info("price quote stored",
		"exchange", quote.Exchange,
		"pair", quote.Pair,
		"spread", quote.Spread.String(),
	)

	return quote, nil
}

// ReadPrice returns the stored quote for (exchange, pair).
func (s *PriceService) ReadPrice(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error) {
	exchange = strings.TrimSpace(exchange)
	pair = strings.TrimSpace(pair)

	quote, err := s.repo.Get(ctx, exchange, pair)
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return nil, err
		}
		s.logger.Error("failed to read price quote",
			"exchange", exchange, "pair", pair, "error", err)
		return nil, domain.ErrStorage
	}

	s.metrics.RecordRead("price")
	return quote, nil
}

// Ensure PriceService implements ports.PriceService
var _ ports.PriceService = (*PriceService)(nil)
