package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// Transaction is the database representation of a single account movement.
// Amount is stored non-negative; transaction_type carries the direction.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Date            time.Time       `db:"date"`
	Description     string          `db:"description"`
	TransactionType TransactionType `db:"transaction_type"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	AccountID       string          `db:"account_id"`
	AuditFields
}
