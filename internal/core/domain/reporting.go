package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceHistoryPoint is one point in a reconstructed balance series.
// Derived data, never persisted.
type BalanceHistoryPoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySummary aggregates one month's transactions for a given year.
// Derived data, never persisted.
type MonthlySummary struct {
	Month       int             `json:"month"` // 1-12
	CreditTotal decimal.Decimal `json:"creditTotal"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	Net         decimal.Decimal `json:"net"` // CreditTotal - DebitTotal
	Count       int             `json:"count"`
}
