package services

import (
	"context"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/findash/findash_backend/internal/dto"
)

// LedgerSvcFacade defines the balance consistency engine: every operation
// that creates, updates, or deletes a transaction also applies the matching
// balance delta to the owning account(s) in the same unit of work.
type LedgerSvcFacade interface {
	// CreateTransaction validates the target account, persists the
	// transaction, and applies its effect to the account balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction reverts the old effect on the old account, applies
	// the new effect on the new account (which may be the same), and
	// overwrites the transaction's fields.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction reverses the transaction's effect on its account and
	// removes it, returning the deleted record.
	DeleteTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the given filters,
	// ordered descending by date.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}
