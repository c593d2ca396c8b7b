package services

import (
	"context"

	"github.com/findash/findash_backend/internal/core/domain"
)

// ReportingSvcFacade defines the derived, read-only views over the ledger.
type ReportingSvcFacade interface {
	// BalanceHistory reconstructs the account's balance series over the last
	// days days by replaying transaction effects backward from the cached
	// balance. The series always starts with the window-start point.
	BalanceHistory(ctx context.Context, accountID string, days int) ([]domain.BalanceHistoryPoint, error)

	// MonthlySummary aggregates the year's transactions per month.
	// Months with no transactions are absent from the result.
	MonthlySummary(ctx context.Context, year int) (map[int]domain.MonthlySummary, error)
}
