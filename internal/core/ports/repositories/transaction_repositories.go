package repositories

import (
	"context"
	"time"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter describes the optional predicates for listing
// transactions. Absent (nil) fields impose no constraint; provided fields
// are ANDed together.
type TransactionFilter struct {
	Month     *int
	Year      *int
	Type      *domain.TransactionType
	Category  *string
	AccountID *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Skip      int
	Limit     int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter,
	// ordered descending by date.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionsByAccountSince retrieves an account's transactions with
	// date >= since, ordered ascending by date.
	FindTransactionsByAccountSince(ctx context.Context, accountID string, since time.Time) ([]domain.Transaction, error)

	// FindTransactionsByYear retrieves all transactions whose date falls in
	// the given calendar year.
	FindTransactionsByYear(ctx context.Context, year int) ([]domain.Transaction, error)
}

// TransactionWriter defines the ledger's mutating operations. Each call is
// one atomic unit of work: the row mutation and the account balance deltas
// are applied inside a single database transaction, or not at all.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and applies delta to its
	// account's balance atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error

	// UpdateTransaction overwrites the transaction's fields and applies the
	// given per-account balance deltas atomically.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes the transaction and applies delta to its
	// account's balance atomically.
	DeleteTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
