package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portsrepo "github.com/findash/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/findash/findash_backend/internal/middleware"
)

// reportingService derives read-only views (balance history, monthly
// summaries) from the transaction set plus the cached account balances.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	defaultDays int

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewReportingService creates a new ReportingService. defaultDays is the
// history window applied when the caller supplies a non-positive value.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, defaultDays int) portssvc.ReportingSvcFacade {
	if defaultDays <= 0 {
		defaultDays = 30
	}
	return &reportingService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BalanceHistory reconstructs the account's balance over [now-days, now].
//
// The cached balance equals the balance at the window start plus the summed
// effect of every windowed transaction (the ledger maintains exactly that
// invariant), so the start balance is recovered by subtracting those
// effects, and the series is then replayed forward one point per
// transaction. Same-date transactions each produce their own point.
func (s *reportingService) BalanceHistory(ctx context.Context, accountID string, days int) ([]domain.BalanceHistoryPoint, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if days <= 0 {
		days = s.defaultDays
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		logger.Error("Failed to fetch account for balance history", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	windowStart := s.now().UTC().AddDate(0, 0, -days)
	transactions, err := s.txnRepo.FindTransactionsByAccountSince(ctx, accountID, windowStart)
	if err != nil {
		logger.Error("Failed to fetch transactions for balance history", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch transactions for account %s: %w", accountID, err)
	}

	// Walk back from the cached balance to the balance as of windowStart.
	balance := account.Balance
	for i := len(transactions) - 1; i >= 0; i-- {
		balance = balance.Sub(transactions[i].Effect())
	}

	history := make([]domain.BalanceHistoryPoint, 0, len(transactions)+1)
	history = append(history, domain.BalanceHistoryPoint{
		Date:    windowStart,
		Balance: balance,
	})

	// Replay forward. If the window covers the whole history, the final
	// point lands exactly on the cached balance.
	for _, txn := range transactions {
		balance = balance.Add(txn.Effect())
		history = append(history, domain.BalanceHistoryPoint{
			Date:    txn.Date,
			Balance: balance,
		})
	}

	logger.Debug("Balance history reconstructed", slog.String("account_id", accountID), slog.Int("days", days), slog.Int("points", len(history)))
	return history, nil
}

// MonthlySummary buckets the year's transactions by month and accumulates
// credit totals, debit totals, counts, and net per populated month.
// Months without transactions are omitted.
func (s *reportingService) MonthlySummary(ctx context.Context, year int) (map[int]domain.MonthlySummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transactions, err := s.txnRepo.FindTransactionsByYear(ctx, year)
	if err != nil {
		logger.Error("Failed to fetch transactions for monthly summary", slog.String("error", err.Error()), slog.Int("year", year))
		return nil, fmt.Errorf("failed to fetch transactions for year %d: %w", year, err)
	}

	summaries := make(map[int]domain.MonthlySummary)
	for _, txn := range transactions {
		month := int(txn.Date.Month())
		summary, ok := summaries[month]
		if !ok {
			summary = domain.MonthlySummary{Month: month}
		}

		if txn.Type == domain.Credit {
			summary.CreditTotal = summary.CreditTotal.Add(txn.Amount)
		} else {
			summary.DebitTotal = summary.DebitTotal.Add(txn.Amount)
		}
		summary.Count++
		summaries[month] = summary
	}

	for month, summary := range summaries {
		summary.Net = summary.CreditTotal.Sub(summary.DebitTotal)
		summaries[month] = summary
	}

	logger.Debug("Monthly summary computed", slog.Int("year", year), slog.Int("months", len(summaries)))
	return summaries, nil
}
