package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction credits or debits its account.
type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// IsValid reports whether the type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction represents a single movement against one account.
// Amount is always non-negative; direction is carried by Type, never by sign.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // When the movement occurred
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`      // CREDIT or DEBIT
	Category      string          `json:"category"`  // Free-form category label
	Amount        decimal.Decimal `json:"amount"`    // Non-negative magnitude
	AccountID     string          `json:"accountID"` // FK -> Account.accountID (Not Null)
	AuditFields
}

// Effect returns the signed amount this transaction contributes to its
// account's balance: +Amount for a credit, -Amount for a debit.
// Every balance mutation and the history reconstruction go through this
// single definition so they cannot drift apart.
func (t Transaction) Effect() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
