package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/adapters/memory"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/repository"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newQuote(t *testing.T, buy, sell string) *domain.PriceQuote {
	t.Helper()
	quote, err := domain.NewPriceQuote("Bitkub", "BTC/THB", d(buy), d(sell), d("985440000"), d("2.45"))
	require.NoError(t, err)
	return quote
}

func TestPriceRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPriceRepository(memory.NewStore())

	stored := newQuote(t, "3430000", "3425000")
	require.NoError(t, repo.Put(ctx, stored))

	got, err := repo.Get(ctx, "Bitkub", "BTC/THB")
	require.NoError(t, err)

	assert.Equal(t, stored.Exchange, got.Exchange)
	assert.Equal(t, stored.Pair, got.Pair)
	assert.True(t, got.BuyPrice.Equal(stored.BuyPrice))
	assert.True(t, got.SellPrice.Equal(stored.SellPrice))
	assert.True(t, got.Spread.Equal(stored.Spread))
	assert.Equal(t, stored.LastUpdated, got.LastUpdated)
}

func TestPriceRepository_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPriceRepository(memory.NewStore())

	require.NoError(t, repo.Put(ctx, newQuote(t, "3430000", "3425000")))
	require.NoError(t, repo.Put(ctx, newQuote(t, "3500000", "3490000")))

	got, err := repo.Get(ctx, "Bitkub", "BTC/THB")
	require.NoError(t, err)
	assert.True(t, got.BuyPrice.Equal(d("3500000")))
}

func TestPriceRepository_GetMissing(t *testing.T) {
	repo := repository.NewPriceRepository(memory.NewStore())

	_, err := repo.Get(context.Background(), "Nowhere", "BTC/THB")
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)
}
