package domain

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// displayLocation is the time zone used for localized display strings
// (PriceQuote.LastUpdated and HistoryPoint.Time). The original site targets
// Thai users, so Bangkok is the default. Held behind an atomic pointer so
// SetDisplayLocation is safe against concurrent quote construction.
var displayLocation atomic.Pointer[time.Location]

func init() {
	displayLocation.Store(mustLoadLocation("Asia/Bangkok"))
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetDisplayLocation changes the time zone for localized display strings.
func SetDisplayLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	displayLocation.Store(loc)
	return nil
}

func displayLoc() *time.Location {
	return displayLocation.Load()
}

// PriceQuote represents the current buy/sell quote for a trading pair on an
// exchange. Identified by (Exchange, Pair); last write wins.
type PriceQuote struct {
	Exchange       string          `json:"exchange"`
	Pair           string          `json:"pair"`
	BuyPrice       decimal.Decimal `json:"buyPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	Volume24h      decimal.Decimal `json:"volume24h"`
	PriceChange24h decimal.Decimal `json:"priceChange24h"`
	Spread         decimal.Decimal `json:"spread"`
	Timestamp      time.Time       `json:"timestamp"`
	LastUpdated    string          `json:"lastUpdated"`
}

// NewPriceQuote validates the inputs and builds a quote with the spread
// derived from the buy and sell prices. Spread is never accepted from the
// caller; it is always recomputed here.
func NewPriceQuote(exchange, pair string, buy, sell, volume, change decimal.Decimal) (*PriceQuote, error) {
	exchange = strings.TrimSpace(exchange)
	pair = strings.TrimSpace(pair)

	if exchange == "" {
		return nil, NewValidationError("exchange", "must not be empty")
	}
	if pair == "" {
		return nil, NewValidationError("pair", "must not be empty")
	}
	if !buy.IsPositive() {
		return nil, NewValidationError("buyPrice", "must be greater than zero")
	}
	if !sell.IsPositive() {
		return nil, NewValidationError("sellPrice", "must be greater than zero")
	}
	if volume.IsNegative() {
		return nil, NewValidationError("volume24h", "must not be negative")
	}

	now := time.Now().UTC()
	return &PriceQuote{
		Exchange:       exchange,
		Pair:           pair,
		BuyPrice:       buy,
		SellPrice:      sell,
		Volume24h:      volume,
		PriceChange24h: change,
		Spread:         Spread(buy, sell),
		Timestamp:      now,
		LastUpdated:    now.In(displayLoc()).Format("15:04:05"),
	}, nil
}

// Spread returns the percentage difference between buy and sell price
// relative to the sell price, rounded to two decimal places.
func Spread(buy, sell decimal.Decimal) decimal.Decimal {
	return buy.Sub(sell).Div(sell).Mul(decimal.NewFromInt(100)).Round(2)
}
