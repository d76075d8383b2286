package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// Snapshot is the pricing client's in-memory view of the watched pair. Quote
// fields and the trading fee live side by side because cost calculation needs
// both; a price refresh touches only the quote fields, a profile refresh only
// the fee fields.
type Snapshot struct {
	BuyPrice       decimal.Decimal
	SellPrice      decimal.Decimal
	TradingFee     decimal.Decimal
	DepositFee     decimal.Decimal
	WithdrawalFee  decimal.Decimal
	Spread         decimal.Decimal
	PriceChange24h decimal.Decimal
	Volume24h      decimal.Decimal
	LastUpdated    string
}

// defaultSnapshot mirrors the placeholder values the UI renders before the
// first successful fetch.
func defaultSnapshot() Snapshot {
	return Snapshot{
		BuyPrice:       decimal.NewFromInt(3430000),
		SellPrice:      decimal.NewFromInt(3425000),
		TradingFee:     decimal.NewFromFloat(0.25),
		DepositFee:     decimal.Zero,
		WithdrawalFee:  decimal.NewFromFloat(0.0005),
		Spread:         decimal.NewFromFloat(0.15),
		PriceChange24h: decimal.NewFromFloat(2.45),
		Volume24h:      decimal.NewFromInt(985440000),
		LastUpdated:    "17:30:00",
	}
}

// PricingClient polls the data service for one exchange/pair, keeps the
// latest snapshot resident and derives cost breakdowns from a user-supplied
// trade amount. Fetch failures are logged and swallowed: the snapshot simply
// keeps its previous values.
type PricingClient struct {
	api      ports.MarketDataAPI
	exchange string
	pair     string
	logger   *slog.Logger

	mu       sync.RWMutex
	snapshot Snapshot
	profile  *domain.ExchangeProfile
	history  []domain.HistoryPoint
	amount   decimal.Decimal
	loading  bool
	clock    time.Time
}

// NewPricingClient creates a pricing client watching one exchange/pair.
func NewPricingClient(api ports.MarketDataAPI, exchange, pair string, logger *slog.Logger) *PricingClient {
	return &PricingClient{
		api:      api,
		exchange: exchange,
		pair:     pair,
		logger:   logger.With("component", "pricing_client"),
		snapshot: defaultSnapshot(),
		amount:   decimal.NewFromInt(1),
		loading:  true,
		clock:    time.Now(),
	}
}

// Initialize seeds the service's sample data and performs the first refresh.
// Errors are logged and swallowed so a failed initialization leaves the
// defaults in place instead of blocking the caller.
func (c *PricingClient) Initialize(ctx context.Context) {
	if err := c.api.Initialize(ctx); err != nil {
		c.logger.Error("failed to initialize sample data", "error", err)
	}
	c.Refresh(ctx)
}

// Refresh fetches the quote, profile and history concurrently and merges
// whatever succeeded into the resident state. Each fetch fails independently;
// a failed one leaves its slice of the state untouched.
func (c *PricingClient) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		quote, err := c.api.GetPrice(ctx, c.exchange, c.pair)
		if err != nil {
			c.logger.Warn("price fetch failed", "error", err)
			return
		}
		c.applyQuote(quote)
	}()

	go func() {
		defer wg.Done()
		profile, err := c.api.GetInfo(ctx, c.exchange)
		if err != nil {
			c.logger.Warn("info fetch failed", "error", err)
			return
		}
		c.applyProfile(profile)
	}()

	go func() {
		defer wg.Done()
		history, err := c.api.GetHistory(ctx, c.exchange, c.pair)
		if err != nil {
			c.logger.Warn("history fetch failed", "error", err)
			return
		}
		c.applyHistory(history)
	}()

	wg.Wait()

	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

func (c *PricingClient) applyQuote(quote *domain.PriceQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.BuyPrice = quote.BuyPrice
	c.snapshot.SellPrice = quote.SellPrice
	c.snapshot.Spread = quote.Spread
	c.snapshot.PriceChange24h = quote.PriceChange24h
	c.snapshot.Volume24h = quote.Volume24h
	c.snapshot.LastUpdated = quote.LastUpdated
}

func (c *PricingClient) applyProfile(profile *domain.ExchangeProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = profile
	c.snapshot.TradingFee = profile.TradingFee
	c.snapshot.DepositFee = profile.DepositFee
	c.snapshot.WithdrawalFee = profile.WithdrawalFee
}

func (c *PricingClient) applyHistory(history []domain.HistoryPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = history
}

// SetAmount updates the trade amount from user input. Empty or non-numeric
// input counts as zero.
func (c *PricingClient) SetAmount(input string) {
	amount := domain.ParseAmount(input)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.amount = amount
}

// Tick advances the display clock.
func (c *PricingClient) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = now
}

// Costs derives the cost breakdown from the resident snapshot and amount.
func (c *PricingClient) Costs() domain.CostBreakdown {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.ComputeCosts(c.amount, c.snapshot.BuyPrice, c.snapshot.SellPrice, c.snapshot.TradingFee)
}

// Snapshot returns a copy of the resident snapshot.
func (c *PricingClient) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Profile returns the last fetched exchange profile, nil before the first
// successful info fetch.
func (c *PricingClient) Profile() *domain.ExchangeProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

// History returns the last fetched history bucket.
func (c *PricingClient) History() []domain.HistoryPoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history
}

// Loading reports whether a refresh is in flight.
func (c *PricingClient) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Clock returns the display clock's last tick.
func (c *PricingClient) Clock() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clock
}
