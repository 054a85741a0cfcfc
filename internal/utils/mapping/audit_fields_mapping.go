package mapping

import (
	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/boki-app/boki_backend/internal/models"
)

// AuditFieldsToDomain converts database audit columns to the domain form.
func AuditFieldsToDomain(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// AuditFieldsToModel converts domain audit fields to the database form.
func AuditFieldsToModel(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}
