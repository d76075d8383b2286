package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// SeedExchange and SeedPair identify the demonstration records written by the
// seed service and read by the pricing client.
const (
	SeedExchange = "Bitkub"
	SeedPair     = "BTC/THB"
)

// SeedService writes the demonstration data set: one exchange profile, one
// price quote and a five-point history bucket. Every call fully overwrites
// the seeded keys, so repeated calls are idempotent.
type SeedService struct {
	priceRepo    ports.PriceRepository
	exchangeRepo ports.ExchangeRepository
	historyRepo  ports.HistoryRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewSeedService creates a new seed service
func NewSeedService(
	priceRepo ports.PriceRepository,
	exchangeRepo ports.ExchangeRepository,
	historyRepo ports.HistoryRepository,
	logger *slog.Logger,
) *SeedService {
	return &SeedService{
		priceRepo:    priceRepo,
		exchangeRepo: exchangeRepo,
		historyRepo:  historyRepo,
		logger:       logger.With("component", "seed_service"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetNowFunc overrides the clock. Tests use this to pin the processing day.
func (s *SeedService) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Seed writes the sample records.
func (s *SeedService) Seed(ctx context.Context) error {
	profile := &domain.ExchangeProfile{
		Name:           SeedExchange,
		TradingFee:     decimal.NewFromFloat(0.25),
		DepositFee:     decimal.Zero,
		WithdrawalFee:  decimal.NewFromFloat(0.0005),
		Founded:        2018,
		Users:          "50K+",
		SupportedCoins: 50,
		Countries:      []string{"Thailand"},
		Advantages: []string{
			"Licensed by SEC Thailand",
			"Local THB support",
			"High liquidity",
			"24/7 customer support",
			"Strong security measures",
		},
		Disadvantages: []string{
			"Higher fees compared to global exchanges",
			"Limited altcoin selection",
			"KYC verification required",
			"Limited trading features",
		},
		ComplianceRating: 8,
		SecurityFeatures: []string{
			"Cold storage for 98% of funds",
			"Two-factor authentication",
			"Insurance coverage",
		},
	}
	profile.Touch()

	if err := s.exchangeRepo.Put(ctx, profile); err != nil {
		s.logger.Error("failed to seed exchange profile", "error", err)
		return domain.ErrStorage
	}

	quote, err := domain.NewPriceQuote(
		SeedExchange,
		SeedPair,
		decimal.NewFromInt(3430000),
		decimal.NewFromInt(3425000),
		decimal.NewFromInt(985440000),
		decimal.NewFromFloat(2.45),
	)
	if err != nil {
		return err
	}

	if err := s.priceRepo.Put(ctx, quote); err != nil {
		s.logger.Error("failed to seed price quote", "error", err)
		return domain.ErrStorage
	}

	now := s.now()
	points := []domain.HistoryPoint{
		{Price: decimal.NewFromInt(3380000), Time: "00:00", Timestamp: now.Add(-16 * time.Hour)},
		{Price: decimal.NewFromInt(3390000), Time: "04:00", Timestamp: now.Add(-12 * time.Hour)},
		{Price: decimal.NewFromInt(3410000), Time: "08:00", Timestamp: now.Add(-8 * time.Hour)},
		{Price: decimal.NewFromInt(3420000), Time: "12:00", Timestamp: now.Add(-4 * time.Hour)},
		{Price: decimal.NewFromInt(3430000), Time: "16:00", Timestamp: now},
	}

	if err := s.historyRepo.PutDay(ctx, SeedExchange, SeedPair, now, points); err != nil {
		s.logger.Error("failed to seed price history", "error", err)
		return domain.ErrStorage
	}

	s.logger.Info("sample data seeded", "exchange", SeedExchange, "pair", SeedPair)
	return nil
}

// Ensure SeedService implements ports.SeedService
var _ ports.SeedService = (*SeedService)(nil)
