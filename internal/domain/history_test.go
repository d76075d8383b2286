package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/domain"
)

func TestNewHistoryPoint(t *testing.T) {
	t.Run("uses supplied timestamp", func(t *testing.T) {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		p, err := domain.NewHistoryPoint(d("3430000"), ts)
		require.NoError(t, err)
		assert.True(t, p.Timestamp.Equal(ts))
		assert.NotEmpty(t, p.Time)
	})

	t.Run("defaults timestamp to now", func(t *testing.T) {
		p, err := domain.NewHistoryPoint(d("100"), time.Time{})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), p.Timestamp, time.Minute)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := domain.NewHistoryPoint(decimal.Zero, time.Time{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAppendHistoryPoint(t *testing.T) {
	point := func(i int) domain.HistoryPoint {
		return domain.HistoryPoint{
			Price:     decimal.NewFromInt(int64(1000 + i)),
			Timestamp: time.Now().UTC(),
			Time:      fmt.Sprintf("%02d:%02d", i/60, i%60),
		}
	}

	t.Run("appends below the cap", func(t *testing.T) {
		var points []domain.HistoryPoint
		for i := 0; i < 10; i++ {
			points = domain.AppendHistoryPoint(points, point(i))
		}
		assert.Len(t, points, 10)
		assert.True(t, points[0].Price.Equal(point(0).Price))
		assert.True(t, points[9].Price.Equal(point(9).Price))
	})

	t.Run("evicts oldest at the cap", func(t *testing.T) {
		var points []domain.HistoryPoint
		for i := 0; i < 300; i++ {
			points = domain.AppendHistoryPoint(points, point(i))
		}

		require.Len(t, points, domain.MaxHistoryPoints)
		// Oldest 12 points dropped; newest 288 kept in call order.
		assert.True(t, points[0].Price.Equal(point(12).Price), "head %s", points[0].Price)
		assert.True(t, points[len(points)-1].Price.Equal(point(299).Price), "tail %s", points[len(points)-1].Price)
	})
}
