package dto

import (
	"time"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be positive; direction is carried by Type.
type CreateTransactionRequest struct {
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Category    string                 `json:"category"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	AccountID   string                 `json:"accountID" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          time.Time              `json:"date"`
	Description   string                 `json:"description"`
	Type          domain.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Amount        decimal.Decimal        `json:"amount"`
	AccountID     string                 `json:"accountID"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Description:   txn.Description,
		Type:          txn.Type,
		Category:      txn.Category,
		Amount:        txn.Amount,
		AccountID:     txn.AccountID,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
// Pointers distinguish "absent" from zero values; absent filters impose no
// constraint.
type ListTransactionsParams struct {
	Skip      int      `form:"skip,default=0"`
	Limit     int      `form:"limit,default=100"`
	Month     *int     `form:"month" binding:"omitempty,min=1,max=12"`
	Year      *int     `form:"year"`
	Type      *string  `form:"type" binding:"omitempty,oneof=CREDIT DEBIT"`
	Category  *string  `form:"category"`
	AccountID *string  `form:"account_id"`
	MinAmount *float64 `form:"min_amount"`
	MaxAmount *float64 `form:"max_amount"`
}
