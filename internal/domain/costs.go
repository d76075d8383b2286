package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CostSide is one half of a cost breakdown: what a trade of the given amount
// costs (buy) or yields (sell), fees included.
type CostSide struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
	// EffectivePrice is Total divided by the traded amount. For a zero
	// amount this is NaN rather than an error; callers blank it at render
	// time.
	EffectivePrice float64 `json:"effectivePrice"`
}

// CostBreakdown is derived from a quote, a trading fee and an amount. It is
// recomputed on every change and never persisted.
type CostBreakdown struct {
	Buy  CostSide `json:"buy"`
	Sell CostSide `json:"sell"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeCosts derives buy and sell cost breakdowns. tradingFee is a percent.
// Buy totals add the fee, sell totals subtract it. No rounding is applied;
// display formatting is the caller's concern.
func ComputeCosts(amount, buyPrice, sellPrice, tradingFee decimal.Decimal) CostBreakdown {
	feeRate := tradingFee.Div(oneHundred)

	buySubtotal := buyPrice.Mul(amount)
	buyFee := buySubtotal.Mul(feeRate)
	buyTotal := buySubtotal.Add(buyFee)

	sellSubtotal := sellPrice.Mul(amount)
	sellFee := sellSubtotal.Mul(feeRate)
	sellTotal := sellSubtotal.Sub(sellFee)

	amt := amount.InexactFloat64()
	return CostBreakdown{
		Buy: CostSide{
			Subtotal:       buySubtotal,
			Fee:            buyFee,
			Total:          buyTotal,
			EffectivePrice: buyTotal.InexactFloat64() / amt,
		},
		Sell: CostSide{
			Subtotal:       sellSubtotal,
			Fee:            sellFee,
			Total:          sellTotal,
			EffectivePrice: sellTotal.InexactFloat64() / amt,
		},
	}
}

// ParseAmount parses a user-supplied trade amount. Empty or non-numeric input
// is treated as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
