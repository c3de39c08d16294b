package mapping

import (
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/models"
)

// ToModelWorkplace converts a domain Workplace to a model Workplace
func ToModelWorkplace(d domain.Workplace) models.Workplace {
	return models.Workplace{
		WorkplaceID:  d.WorkplaceID,
		Name:         d.Name,
		Description:  d.Description,
		CurrencyCode: d.CurrencyCode,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkplace converts a model Workplace to a domain Workplace
func ToDomainWorkplace(m models.Workplace) domain.Workplace {
	return domain.Workplace{
		WorkplaceID:  m.WorkplaceID,
		Name:         m.Name,
		Description:  m.Description,
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
