package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/exchangethb/exchange-data-service/internal/repository"
)

func TestKeys(t *testing.T) {
	day := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "price key",
			got:  repository.PriceKey("Bitkub", "BTC/THB"),
			want: "price:Bitkub:BTC/THB",
		},
		{
			name: "exchange key",
			got:  repository.ExchangeKey("Bitkub"),
			want: "exchange:Bitkub",
		},
		{
			name: "history key carries the calendar day",
			got:  repository.HistoryKey("Bitkub", "BTC/THB", day),
			want: "history:Bitkub:BTC/THB:2025-06-01",
		},
		{
			name: "preferences key",
			got:  repository.PreferencesKey("session-123"),
			want: "preferences:session-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestHistoryKey_DifferentDaysDifferentBuckets(t *testing.T) {
	before := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	after := time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC)

	assert.NotEqual(t,
		repository.HistoryKey("Bitkub", "BTC/THB", before),
		repository.HistoryKey("Bitkub", "BTC/THB", after),
	)
}
