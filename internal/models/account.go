package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a financial account.
// Balance is the cached aggregate column maintained by the ledger.
type Account struct {
	AccountID string          `db:"account_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
