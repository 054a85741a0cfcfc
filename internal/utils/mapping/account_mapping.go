package mapping

import (
	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/boki-app/boki_backend/internal/models"
)

// AccountToDomain converts an account row to its domain representation.
func AccountToDomain(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: AuditFieldsToDomain(m.AuditFields),
	}
}

// AccountToModel converts a domain account to its database representation.
func AccountToModel(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: string(d.AccountType),
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: AuditFieldsToModel(d.AuditFields),
	}
}
