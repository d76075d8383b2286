package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/adapters/memory"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/repository"
)

func TestHistoryRepository_AppendAndGetDay(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewHistoryRepository(memory.NewStore())
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	point := domain.HistoryPoint{Price: d("3430000"), Timestamp: day, Time: "10:00"}

	length, err := repo.Append(ctx, "Bitkub", "BTC/THB", day, point)
	require.NoError(t, err)
	assert.Equal(t, 1, length)

	points, err := repo.GetDay(ctx, "Bitkub", "BTC/THB", day)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].Price.Equal(d("3430000")))
}

func TestHistoryRepository_GetDayMissingReturnsEmpty(t *testing.T) {
	repo := repository.NewHistoryRepository(memory.NewStore())

	points, err := repo.GetDay(context.Background(), "Bitkub", "BTC/THB", time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestHistoryRepository_CapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewHistoryRepository(memory.NewStore())
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 300; i++ {
		point := domain.HistoryPoint{
			Price:     decimal.NewFromInt(int64(1000 + i)),
			Timestamp: day.Add(time.Duration(i) * 5 * time.Minute),
			Time:      day.Add(time.Duration(i) * 5 * time.Minute).Format("15:04"),
		}
		length, err := repo.Append(ctx, "Bitkub", "BTC/THB", day, point)
		require.NoError(t, err)
		assert.LessOrEqual(t, length, domain.MaxHistoryPoints)
	}

	points, err := repo.GetDay(ctx, "Bitkub", "BTC/THB", day)
	require.NoError(t, err)
	require.Len(t, points, domain.MaxHistoryPoints)

	// The first appends were evicted; the 300th point is the tail.
	assert.True(t, points[0].Price.Equal(decimal.NewFromInt(1012)), "head %s", points[0].Price)
	assert.True(t, points[len(points)-1].Price.Equal(decimal.NewFromInt(1299)), "tail %s", points[len(points)-1].Price)
}

func TestHistoryRepository_IndependentDayBuckets(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewHistoryRepository(memory.NewStore())

	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	_, err := repo.Append(ctx, "Bitkub", "BTC/THB", day1, domain.HistoryPoint{Price: d("100"), Timestamp: day1})
	require.NoError(t, err)

	points, err := repo.GetDay(ctx, "Bitkub", "BTC/THB", day2)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestHistoryRepository_PutDayOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewHistoryRepository(memory.NewStore())
	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		_, err := repo.Append(ctx, "Bitkub", "BTC/THB", day, domain.HistoryPoint{Price: d("100"), Timestamp: day})
		require.NoError(t, err)
	}

	seeded := []domain.HistoryPoint{
		{Price: d("3380000"), Timestamp: day, Time: "00:00"},
		{Price: d("3430000"), Timestamp: day, Time: "16:00"},
	}
	require.NoError(t, repo.PutDay(ctx, "Bitkub", "BTC/THB", day, seeded))

	points, err := repo.GetDay(ctx, "Bitkub", "BTC/THB", day)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.True(t, points[0].Price.Equal(d("3380000")))
}
