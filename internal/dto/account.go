package dto

import (
	"time"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is the opening seed and defaults to zero when omitted.
type CreateAccountRequest struct {
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// UpdateAccountRequest defines a full account replace: new name and a
// reseeded balance. The balance overwrite is administrative; it resets the
// baseline the ledger maintains deltas against.
type UpdateAccountRequest struct {
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// RenameAccountRequest defines a name-only account patch.
type RenameAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceEntry is one account's current cached balance, keyed by
// account name in AccountBalancesResponse.
type AccountBalanceEntry struct {
	AccountID      string          `json:"id"`
	AccountName    string          `json:"account_name"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// AccountBalancesResponse maps account name to its balance entry.
type AccountBalancesResponse map[string]AccountBalanceEntry

// ToAccountBalancesResponse builds the name-keyed balance map.
func ToAccountBalancesResponse(accounts []domain.Account) AccountBalancesResponse {
	res := make(AccountBalancesResponse, len(accounts))
	for _, acc := range accounts {
		res[acc.Name] = AccountBalanceEntry{
			AccountID:      acc.AccountID,
			AccountName:    acc.Name,
			CurrentBalance: acc.Balance,
		}
	}
	return res
}
