package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/findash/findash_backend/internal/apperrors"
	"github.com/findash/findash_backend/internal/core/domain"
	portsrepo "github.com/findash/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/findash/findash_backend/internal/dto"
	"github.com/findash/findash_backend/internal/middleware"
)

// defaultAccountNames are created on first startup against an empty store.
var defaultAccountNames = []string{"Checking Account", "Savings Account", "Wallet"}

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account. The balance seed defaults to zero
// when the request omits it.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      req.Name,
		Balance:   req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Debug("Account retrieved successfully", slog.String("account_id", account.AccountID))
	return account, nil
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetAccountBalances returns every account with its current cached balance.
// Reads the cache only; no transaction scan is involved.
func (s *accountService) GetAccountBalances(ctx context.Context) ([]domain.Account, error) {
	return s.ListAccounts(ctx)
}

// UpdateAccount replaces the account's name and reseeds its balance. The
// balance write here is administrative: it resets the baseline the ledger
// applies deltas to, so history reconstructed across a reseed only reflects
// windowed transaction effects layered on the new seed.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, err
	}

	account.Name = req.Name
	account.Balance = req.Balance
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// RenameAccount updates only the account's name, leaving the balance alone.
func (s *accountService) RenameAccount(ctx context.Context, accountID string, req dto.RenameAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, err
	}

	account.Name = req.Name
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to rename account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to rename account %s: %w", accountID, err)
	}

	logger.Info("Account renamed successfully", slog.String("account_id", accountID), slog.String("name", account.Name))
	return account, nil
}

// EnsureDefaultAccounts creates the default account set when the store is
// empty. Called once at startup; a non-empty store is left untouched.
func (s *accountService) EnsureDefaultAccounts(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		logger.Debug("Accounts already present, skipping default account creation", slog.Int("count", count))
		return nil
	}

	for _, name := range defaultAccountNames {
		if _, err := s.CreateAccount(ctx, dto.CreateAccountRequest{Name: name}); err != nil {
			return fmt.Errorf("failed to create default account %q: %w", name, err)
		}
	}

	logger.Info("Default accounts created", slog.Int("count", len(defaultAccountNames)))
	return nil
}
