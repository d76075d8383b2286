package repository

import (
	"fmt"
	"time"
)

// Key construction for the flat key-value namespace. All composite keys are
// built here so the scheme cannot drift between repositories.

const (
	pricePrefix       = "price:"
	exchangePrefix    = "exchange:"
	historyPrefix     = "history:"
	preferencesPrefix = "preferences:"

	dayFormat = "2006-01-02"
)

// PriceKey returns the key for a pair's current quote.
func PriceKey(exchange, pair string) string {
	return fmt.Sprintf("%s%s:%s", pricePrefix, exchange, pair)
}

// ExchangeKey returns the key for an exchange profile.
func ExchangeKey(name string) string {
	return exchangePrefix + name
}

// HistoryKey returns the key for a pair's history bucket on the given day.
func HistoryKey(exchange, pair string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", historyPrefix, exchange, pair, day.Format(dayFormat))
}

// PreferencesKey returns the key for a session's preferences.
func PreferencesKey(sessionID string) string {
	return preferencesPrefix + sessionID
}
