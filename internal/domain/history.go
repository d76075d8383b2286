package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxHistoryPoints caps a day's history bucket at 288 entries, one per
// five-minute interval over 24 hours.
const MaxHistoryPoints = 288

// HistoryPoint is one entry in a day's price history bucket.
type HistoryPoint struct {
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	Time      string          `json:"time"`
}

// NewHistoryPoint builds a history point. When ts is zero the current time is
// used. The display time is always rendered from the current wall clock, not
// from ts, matching how buckets are keyed off the processing day.
func NewHistoryPoint(price decimal.Decimal, ts time.Time) (HistoryPoint, error) {
	if !price.IsPositive() {
		return HistoryPoint{}, NewValidationError("price", "must be greater than zero")
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return HistoryPoint{
		Price:     price,
		Timestamp: ts,
		Time:      time.Now().In(displayLoc()).Format("15:04"),
	}, nil
}

// AppendHistoryPoint appends p to the bucket, evicting the oldest entries
// first so the result never exceeds MaxHistoryPoints. At the cap the newest
// MaxHistoryPoints-1 entries are kept and p becomes the tail.
func AppendHistoryPoint(points []HistoryPoint, p HistoryPoint) []HistoryPoint {
	if len(points) >= MaxHistoryPoints {
		points = points[len(points)-(MaxHistoryPoints-1):]
	}
	return append(points, p)
}
