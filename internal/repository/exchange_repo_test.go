package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/adapters/memory"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/repository"
)

func newProfile(name string) *domain.ExchangeProfile {
	return &domain.ExchangeProfile{
		Name:             name,
		TradingFee:       d("0.25"),
		DepositFee:       d("0"),
		WithdrawalFee:    d("0.0005"),
		Founded:          2018,
		Users:            "50K+",
		SupportedCoins:   50,
		Countries:        []string{"Thailand"},
		ComplianceRating: 8,
		UpdatedAt:        time.Now().UTC(),
	}
}

func TestExchangeRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewExchangeRepository(memory.NewStore())

	require.NoError(t, repo.Put(ctx, newProfile("Bitkub")))

	got, err := repo.Get(ctx, "Bitkub")
	require.NoError(t, err)
	assert.Equal(t, "Bitkub", got.Name)
	assert.True(t, got.TradingFee.Equal(d("0.25")))
	assert.Equal(t, []string{"Thailand"}, got.Countries)
}

func TestExchangeRepository_GetMissing(t *testing.T) {
	repo := repository.NewExchangeRepository(memory.NewStore())

	_, err := repo.Get(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, domain.ErrExchangeNotFound)
}

func TestExchangeRepository_List(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := repository.NewExchangeRepository(store)

	require.NoError(t, repo.Put(ctx, newProfile("Bitkub")))
	require.NoError(t, repo.Put(ctx, newProfile("Binance")))

	// Unrelated keys must not leak into the listing.
	prices := repository.NewPriceRepository(store)
	quote, err := domain.NewPriceQuote("Bitkub", "BTC/THB", d("100"), d("90"), d("0"), d("0"))
	require.NoError(t, err)
	require.NoError(t, prices.Put(ctx, quote))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Binance", profiles[0].Name)
	assert.Equal(t, "Bitkub", profiles[1].Name)
}

func TestPreferenceRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPreferenceRepository(memory.NewStore())

	prefs := domain.NewUserPreferences(map[string]any{"theme": "dark", "currency": "THB"})
	require.NoError(t, repo.Put(ctx, "session-123", prefs))

	got, err := repo.Get(ctx, "session-123")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Values["theme"])
	assert.Equal(t, "THB", got.Values["currency"])
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestPreferenceRepository_GetMissingReturnsEmpty(t *testing.T) {
	repo := repository.NewPreferenceRepository(memory.NewStore())

	got, err := repo.Get(context.Background(), "unknown-session")
	require.NoError(t, err)
	assert.Empty(t, got.Values)
	assert.True(t, got.UpdatedAt.IsZero())
}
