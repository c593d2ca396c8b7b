package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portsrepo "github.com/findash/findash_backend/internal/core/ports/repositories"
	"github.com/findash/findash_backend/internal/models"
	"github.com/findash/findash_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, date, description, transaction_type, category, amount, account_id, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTransactionRepository creates a new repository for transaction data.
// The account repository dependency supplies row locking and balance delta
// application inside the ledger's units of work.
func NewTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the transaction and applies delta to its account's
// balance within a single database transaction. The account row is locked
// first so no concurrent mutation can interleave with the balance update.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{txn.AccountID}); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock account for transaction insert", err)
	}

	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Description,
		modelTxn.TransactionType,
		modelTxn.Category,
		modelTxn.Amount,
		modelTxn.AccountID,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	balanceChanges := map[string]decimal.Decimal{txn.AccountID: delta}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update account balance", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction overwrites the transaction's fields and applies the
// given per-account balance deltas within a single database transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock accounts for transaction update", err)
	}

	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET date = $2, description = $3, transaction_type = $4, category = $5, amount = $6, account_id = $7, last_updated_at = $8
		WHERE transaction_id = $1;
	`
	ct, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Description,
		modelTxn.TransactionType,
		modelTxn.Category,
		modelTxn.Amount,
		modelTxn.AccountID,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+modelTxn.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction and applies delta to its
// account's balance within a single database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{txn.AccountID}); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The owning account vanished: ownership invariant broken.
			return fmt.Errorf("%w: transaction %s references missing account %s", apperrors.ErrIntegrity, txn.TransactionID, txn.AccountID)
		}
		return apperrors.NewAppError(500, "failed to lock account for transaction delete", err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, txn.TransactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+txn.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
	}

	now := time.Now().UTC()
	balanceChanges := map[string]decimal.Decimal{txn.AccountID: delta}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balance", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.Date,
		&modelTxn.Description,
		&modelTxn.TransactionType,
		&modelTxn.Category,
		&modelTxn.Amount,
		&modelTxn.AccountID,
		&modelTxn.CreatedAt,
		&modelTxn.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves transactions matching the filter, ordered
// descending by date. All provided predicates are ANDed; date ties keep
// storage order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions`)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Month != nil {
		conditions = append(conditions, `EXTRACT(MONTH FROM date) = `+arg(*filter.Month))
	}
	if filter.Year != nil {
		conditions = append(conditions, `EXTRACT(YEAR FROM date) = `+arg(*filter.Year))
	}
	if filter.Type != nil {
		conditions = append(conditions, `transaction_type = `+arg(string(*filter.Type)))
	}
	if filter.Category != nil {
		conditions = append(conditions, `category = `+arg(*filter.Category))
	}
	if filter.AccountID != nil {
		conditions = append(conditions, `account_id = `+arg(*filter.AccountID))
	}
	if filter.MinAmount != nil {
		conditions = append(conditions, `amount >= `+arg(*filter.MinAmount))
	}
	if filter.MaxAmount != nil {
		conditions = append(conditions, `amount <= `+arg(*filter.MaxAmount))
	}

	if len(conditions) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}
	sb.WriteString(` ORDER BY date DESC`)
	sb.WriteString(` OFFSET ` + arg(filter.Skip))
	sb.WriteString(` LIMIT ` + arg(filter.Limit))
	sb.WriteString(`;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindTransactionsByAccountSince retrieves an account's transactions with
// date >= since, ordered ascending by date.
func (r *PgxTransactionRepository) FindTransactionsByAccountSince(ctx context.Context, accountID string, since time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND date >= $2
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindTransactionsByYear retrieves all transactions dated within the year.
func (r *PgxTransactionRepository) FindTransactionsByYear(ctx context.Context, year int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for year %d: %w", year, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.Date,
			&modelTxn.Description,
			&modelTxn.TransactionType,
			&modelTxn.Category,
			&modelTxn.Amount,
			&modelTxn.AccountID,
			&modelTxn.CreatedAt,
			&modelTxn.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, mapping.ToDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}
