package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portsrepo "github.com/findash/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/findash/findash_backend/internal/dto"
	"github.com/findash/findash_backend/internal/middleware"
)

var (
	ErrAmountNotPositive      = errors.New("transaction amount must be positive")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)

// ledgerService is the balance consistency engine. It owns the three
// mutating transaction operations and guarantees that every one of them
// adjusts the affected account balances in the same unit of work, using
// domain.Transaction.Effect as the single source of balance arithmetic.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateTransactionInput re-checks the invariants the DTO binding already
// enforces. The service is also called from non-HTTP entry points (seeder,
// tests), so it cannot rely on binding alone.
func (s *ledgerService) validateTransactionInput(req dto.CreateTransactionRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, ErrUnknownTransactionType, req.Type)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: %w: got %s", apperrors.ErrValidation, ErrAmountNotPositive, req.Amount)
	}
	return nil
}

// CreateTransaction validates the target account, persists the transaction,
// and applies its effect to the account's cached balance atomically.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateTransactionInput(req); err != nil {
		return nil, err
	}

	// Verify the owning account exists before touching storage state.
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
		}
		logger.Error("Failed to fetch account for transaction creation", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to fetch account %s: %w", req.AccountID, err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Description:   req.Description,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		AccountID:     req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// Insert + balance adjustment happen inside one storage transaction.
	if err := s.txnRepo.SaveTransaction(ctx, txn, txn.Effect()); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", txn.AccountID))
	return &txn, nil
}

// UpdateTransaction reverts the old effect on the old account, applies the
// new effect on the new account, and overwrites the transaction's fields.
// The revert-then-apply pair runs unconditionally, even when nothing moved
// between accounts, so an edit concurrent with other mutations still lands
// on a consistent balance.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateTransactionInput(req); err != nil {
		return nil, err
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		logger.Error("Failed to fetch transaction for update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", transactionID, err)
	}

	// The old owning account must still exist. If it does not, the stored
	// data violates the ownership invariant; surface that as corruption,
	// not as an ordinary not-found.
	if _, err := s.accountRepo.FindAccountByID(ctx, existing.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %s references missing account %s", apperrors.ErrIntegrity, transactionID, existing.AccountID)
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", existing.AccountID, err)
	}

	// The new target account is caller-supplied, so a miss there is a
	// normal not-found.
	if req.AccountID != existing.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
			}
			return nil, fmt.Errorf("failed to fetch account %s: %w", req.AccountID, err)
		}
	}

	now := time.Now().UTC()
	updated := domain.Transaction{
		TransactionID: existing.TransactionID,
		Date:          req.Date,
		Description:   req.Description,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		AccountID:     req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: now,
		},
	}

	// Revert the old effect, then apply the new one. When old and new
	// account coincide the two deltas collapse into a single net change on
	// that account; when they differ this moves value between the two.
	balanceChanges := make(map[string]decimal.Decimal, 2)
	balanceChanges[existing.AccountID] = existing.Effect().Neg()
	if current, ok := balanceChanges[updated.AccountID]; ok {
		balanceChanges[updated.AccountID] = current.Add(updated.Effect())
	} else {
		balanceChanges[updated.AccountID] = updated.Effect()
	}

	if err := s.txnRepo.UpdateTransaction(ctx, updated, balanceChanges); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID), slog.String("old_account_id", existing.AccountID), slog.String("new_account_id", updated.AccountID))
	return &updated, nil
}

// DeleteTransaction reverses the transaction's effect on its owning account
// and removes it, returning the deleted record for caller confirmation.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		logger.Error("Failed to fetch transaction for deletion", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", transactionID, err)
	}

	// A transaction whose account is gone is corrupted data, not a 404.
	if _, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Transaction references missing account", slog.String("transaction_id", transactionID), slog.String("account_id", txn.AccountID))
			return nil, fmt.Errorf("%w: transaction %s references missing account %s", apperrors.ErrIntegrity, transactionID, txn.AccountID)
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", txn.AccountID, err)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, *txn, txn.Effect().Neg()); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID), slog.String("account_id", txn.AccountID))
	return txn, nil
}

// ListTransactions retrieves transactions matching the given filters,
// ordered descending by date.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 100 // Default limit
	}
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}

	filter := portsrepo.TransactionFilter{
		Month:     params.Month,
		Year:      params.Year,
		Category:  params.Category,
		AccountID: params.AccountID,
		Skip:      skip,
		Limit:     limit,
	}
	if params.Type != nil {
		txnType := domain.TransactionType(*params.Type)
		if !txnType.IsValid() {
			return nil, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, ErrUnknownTransactionType, *params.Type)
		}
		filter.Type = &txnType
	}
	if params.MinAmount != nil {
		min := decimal.NewFromFloat(*params.MinAmount)
		filter.MinAmount = &min
	}
	if params.MaxAmount != nil {
		max := decimal.NewFromFloat(*params.MaxAmount)
		filter.MaxAmount = &max
	}

	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	if txns == nil {
		return []domain.Transaction{}, nil
	}

	logger.Debug("Transactions listed successfully", slog.Int("count", len(txns)))
	return txns, nil
}
