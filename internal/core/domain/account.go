package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the core domain.
// Balance is a cached aggregate: it always equals the account's seed value
// plus the summed effect of its live transactions. It is mutated only by
// the ledger service, never written directly by callers.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	Name      string          `json:"name"`      // User-defined name
	Balance   decimal.Decimal `json:"balance"`   // Cached balance, maintained by the ledger
	AuditFields
}
