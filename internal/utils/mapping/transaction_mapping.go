package mapping

import (
	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/findash/findash_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Date:            d.Date,
		Description:     d.Description,
		TransactionType: models.TransactionType(d.Type),
		Category:        d.Category,
		Amount:          d.Amount,
		AccountID:       d.AccountID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Description:   m.Description,
		Type:          domain.TransactionType(m.TransactionType),
		Category:      m.Category,
		Amount:        m.Amount,
		AccountID:     m.AccountID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
