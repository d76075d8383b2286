package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// HistoryService implements the ports.HistoryService interface. Buckets are
// keyed off the server's current processing day: a point's own timestamp
// never influences which bucket it lands in, only where reads resolve to.
type HistoryService struct {
	repo    ports.HistoryRepository
	metrics ports.MetricsService
	logger  *slog.Logger
	now     func() time.Time
}

// NewHistoryService creates a new history service
func NewHistoryService(repo ports.HistoryRepository, metrics ports.MetricsService, logger *slog.Logger) *HistoryService {
	return &HistoryService{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With("component", "history_service"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetNowFunc overrides the clock. Tests use this to pin the processing day.
func (s *HistoryService) SetNowFunc(now func() time.Time) {
	s.now = now
}

// AppendPoint appends a point to today's bucket and returns the new length.
func (s *HistoryService) AppendPoint(ctx context.Context, exchange, pair string, price decimal.Decimal, ts time.Time) (int, error) {
	exchange = strings.TrimSpace(exchange)
	pair = strings.TrimSpace(pair)
	if exchange == "" {
		return 0, domain.NewValidationError("exchange", "must not be empty")
	}
	if pair == "" {
		return 0, domain.NewValidationError("pair", "must not be empty")
	}

	point, err := domain.NewHistoryPoint(price, ts)
	if err != nil {
		return 0, err
	}

	length, err := s.repo.Append(ctx, exchange, pair, s.now(), point)
	if err != nil {
		s.logger.Error("failed to append history point",
			"exchange", exchange, "pair", pair, "error", err)
		return 0, domain.ErrStorage
	}

	s.metrics.RecordWrite("history")

	s.logger.Debug("history point appended",
		"exchange", exchange, "pair", pair, "data_points", length)

	return length, nil
}

// ReadDay returns today's bucket, empty if nothing was appended yet.
func (s *HistoryService) ReadDay(ctx context.Context, exchange, pair string) ([]domain.HistoryPoint, error) {
	exchange = strings.TrimSpace(exchange)
	pair = strings.TrimSpace(pair)

	points, err := s.repo.GetDay(ctx, exchange, pair, s.now())
	if err != nil {
		s.logger.Error("failed to read history bucket",
			"exchange", exchange, "pair", pair, "error", err)
		return nil, domain.ErrStorage
	}

	s.metrics.RecordRead("history")
	return points, nil
}

// Ensure HistoryService implements ports.HistoryService
var _ ports.HistoryService = (*HistoryService)(nil)
