package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/adapters/memory"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/repository"
	"github.com/exchangethb/exchange-data-service/internal/services"
)

func newPriceService(t *testing.T) (*services.PriceService, *services.MetricsService) {
	t.Helper()
	store := memory.NewStore()
	metrics := services.NewMetricsService(store, newTestLogger())
	return services.NewPriceService(repository.NewPriceRepository(store), metrics, newTestLogger()), metrics
}

func TestPriceService_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPriceService(t)

	stored, err := svc.WritePrice(ctx, "Bitkub", "BTC/THB", d("3430000"), d("3425000"), d("985440000"), d("2.45"))
	require.NoError(t, err)
	assert.True(t, stored.Spread.Equal(d("0.15")), "spread %s", stored.Spread)
	assert.False(t, stored.Timestamp.IsZero())

	got, err := svc.ReadPrice(ctx, "Bitkub", "BTC/THB")
	require.NoError(t, err)
	assert.True(t, got.BuyPrice.Equal(d("3430000")))
	assert.True(t, got.Spread.Equal(stored.Spread))
}

func TestPriceService_WriteRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPriceService(t)

	_, err := svc.WritePrice(ctx, "Bitkub", "BTC/THB", d("0"), d("90"), d("0"), d("0"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.WritePrice(ctx, "", "BTC/THB", d("100"), d("90"), d("0"), d("0"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPriceService_ReadMissing(t *testing.T) {
	svc, _ := newPriceService(t)

	_, err := svc.ReadPrice(context.Background(), "Nowhere", "BTC/THB")
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)
}

func TestPriceService_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newPriceService(t)

	_, err := svc.WritePrice(ctx, "Bitkub", "BTC/THB", d("100"), d("90"), d("0"), d("0"))
	require.NoError(t, err)
	_, err = svc.ReadPrice(ctx, "Bitkub", "BTC/THB")
	require.NoError(t, err)

	m, err := metrics.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Writes["price"])
	assert.Equal(t, int64(1), m.Reads["price"])
	assert.NotNil(t, m.LastWriteTime)
	assert.Equal(t, "healthy", m.StorageStatus)
}
