package dto

import (
	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceHistoryPointResponse is one point in a balance history series.
// Dates are day-granular in the response, matching the dashboard chart.
type BalanceHistoryPointResponse struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Balance decimal.Decimal `json:"balance"`
}

// ToBalanceHistoryResponse converts a domain series to response DTOs.
func ToBalanceHistoryResponse(points []domain.BalanceHistoryPoint) []BalanceHistoryPointResponse {
	res := make([]BalanceHistoryPointResponse, len(points))
	for i, p := range points {
		res[i] = BalanceHistoryPointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Balance: p.Balance,
		}
	}
	return res
}

// BalanceHistoryParams defines query parameters for the history endpoint.
type BalanceHistoryParams struct {
	Days int `form:"days,default=30"`
}

// MonthlySummaryEntry is one populated month's aggregate.
type MonthlySummaryEntry struct {
	CreditTotal decimal.Decimal `json:"creditTotal"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	Net         decimal.Decimal `json:"net"`
	Count       int             `json:"count"`
}

// MonthlySummaryResponse maps month number (1-12) to its aggregate.
// Months with no transactions are absent.
type MonthlySummaryResponse map[int]MonthlySummaryEntry

// ToMonthlySummaryResponse converts domain summaries to the sparse map DTO.
func ToMonthlySummaryResponse(summaries map[int]domain.MonthlySummary) MonthlySummaryResponse {
	res := make(MonthlySummaryResponse, len(summaries))
	for month, s := range summaries {
		res[month] = MonthlySummaryEntry{
			CreditTotal: s.CreditTotal,
			DebitTotal:  s.DebitTotal,
			Net:         s.Net,
			Count:       s.Count,
		}
	}
	return res
}

// MonthlySummaryParams defines query parameters for the summary endpoint.
type MonthlySummaryParams struct {
	Year int `form:"year" binding:"required"`
}
