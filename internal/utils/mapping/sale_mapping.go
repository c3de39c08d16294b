package mapping

import (
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale (items are mapped separately)
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		WorkplaceID:   d.WorkplaceID,
		Number:        d.Number,
		ContactID:     d.ContactID,
		Status:        string(d.Status),
		PaymentMethod: string(d.PaymentMethod),
		Subtotal:      d.Subtotal,
		TaxTotal:      d.TaxTotal,
		DiscountTotal: d.DiscountTotal,
		Total:         d.Total,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale and its items to a domain Sale
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		WorkplaceID:   m.WorkplaceID,
		Number:        m.Number,
		ContactID:     m.ContactID,
		Status:        domain.SaleStatus(m.Status),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Items:         ToDomainSaleItems(items),
		Subtotal:      m.Subtotal,
		TaxTotal:      m.TaxTotal,
		DiscountTotal: m.DiscountTotal,
		Total:         m.Total,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID:  d.SaleItemID,
		SaleID:      d.SaleID,
		ProductID:   d.ProductID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainSaleItems converts model SaleItems to domain SaleItems
func ToDomainSaleItems(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.SaleItem{
			SaleItemID:  m.SaleItemID,
			SaleID:      m.SaleID,
			ProductID:   m.ProductID,
			Description: m.Description,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
			TaxRate:     m.TaxRate,
			LineTotal:   m.LineTotal,
		}
	}
	return ds
}
