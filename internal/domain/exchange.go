package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeProfile describes an exchange's fees and general information.
// Identified by Name; writes replace the whole record (no partial merge)
// and always refresh UpdatedAt.
type ExchangeProfile struct {
	Name             string          `json:"name"`
	TradingFee       decimal.Decimal `json:"tradingFee"`
	DepositFee       decimal.Decimal `json:"depositFee"`
	WithdrawalFee    decimal.Decimal `json:"withdrawalFee"`
	Founded          int             `json:"founded"`
	Users            string          `json:"users"`
	SupportedCoins   int             `json:"supportedCoins"`
	Countries        []string        `json:"countries"`
	Advantages       []string        `json:"advantages"`
	Disadvantages    []string        `json:"disadvantages"`
	ComplianceRating int             `json:"complianceRating"`
	SecurityFeatures []string        `json:"securityFeatures"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Validate checks the profile's fields before it is stored.
func (p *ExchangeProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if p.TradingFee.IsNegative() {
		return NewValidationError("tradingFee", "must not be negative")
	}
	if p.DepositFee.IsNegative() {
		return NewValidationError("depositFee", "must not be negative")
	}
	if p.WithdrawalFee.IsNegative() {
		return NewValidationError("withdrawalFee", "must not be negative")
	}
	if p.SupportedCoins < 0 {
		return NewValidationError("supportedCoins", "must not be negative")
	}
	if p.ComplianceRating < 0 || p.ComplianceRating > 10 {
		return NewValidationError("complianceRating", "must be between 0 and 10")
	}
	return nil
}

// Touch refreshes UpdatedAt to the current time.
func (p *ExchangeProfile) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
