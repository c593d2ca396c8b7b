package services

import (
	"context"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/findash/findash_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountBalances returns the current cached balance of every account.
	GetAccountBalances(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with an optional opening balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount replaces an account's name and reseeds its balance.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// RenameAccount updates only the account's name.
	RenameAccount(ctx context.Context, accountID string, req dto.RenameAccountRequest) (*domain.Account, error)

	// EnsureDefaultAccounts creates the default account set when the store is empty.
	EnsureDefaultAccounts(ctx context.Context) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
