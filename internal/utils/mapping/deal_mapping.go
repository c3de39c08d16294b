package mapping

import (
	"strings"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/models"
)

// ToModelDeal converts a domain Deal to a model Deal
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		DealID:            d.DealID,
		WorkplaceID:       d.WorkplaceID,
		Title:             d.Title,
		Description:       d.Description,
		Value:             d.Value,
		Stage:             string(d.Stage),
		Probability:       d.Probability,
		ExpectedCloseDate: d.ExpectedCloseDate,
		ActualCloseDate:   d.ActualCloseDate,
		Notes:             d.Notes,
		ContactID:         d.ContactID,
		CompanyID:         d.CompanyID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeal converts a model Deal to a domain Deal, resolving joined contact/company columns
func ToDomainDeal(m models.Deal) domain.Deal {
	d := domain.Deal{
		DealID:            m.DealID,
		WorkplaceID:       m.WorkplaceID,
		Title:             m.Title,
		Description:       m.Description,
		Value:             m.Value,
		Stage:             domain.DealStage(m.Stage),
		Probability:       m.Probability,
		ExpectedCloseDate: m.ExpectedCloseDate,
		ActualCloseDate:   m.ActualCloseDate,
		Notes:             m.Notes,
		ContactID:         m.ContactID,
		CompanyID:         m.CompanyID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.ContactID != nil && (m.ContactFirstName != nil || m.ContactLastName != nil) {
		d.Contact = &domain.ContactRef{
			ContactID: *m.ContactID,
			FullName:  fullName(m.ContactFirstName, m.ContactLastName),
		}
	}
	if m.CompanyID != nil && m.CompanyName != nil {
		d.Company = &domain.CompanyRef{CompanyID: *m.CompanyID, Name: *m.CompanyName}
	}
	return d
}

func fullName(first, last *string) string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	return strings.Join(parts, " ")
}
