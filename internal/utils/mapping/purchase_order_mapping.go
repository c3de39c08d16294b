package mapping

import (
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PurchaseOrderID: d.PurchaseOrderID,
		WorkplaceID:     d.WorkplaceID,
		Number:          d.Number,
		SupplierID:      d.SupplierID,
		Status:          string(d.Status),
		ExpectedDate:    d.ExpectedDate,
		ReceivedAt:      d.ReceivedAt,
		Total:           d.Total,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder and its items to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder, items []models.PurchaseOrderItem) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		WorkplaceID:     m.WorkplaceID,
		Number:          m.Number,
		SupplierID:      m.SupplierID,
		Status:          domain.PurchaseOrderStatus(m.Status),
		ExpectedDate:    m.ExpectedDate,
		ReceivedAt:      m.ReceivedAt,
		Items:           ToDomainPurchaseOrderItems(items),
		Total:           m.Total,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrderItem converts a domain PurchaseOrderItem to a model PurchaseOrderItem
func ToModelPurchaseOrderItem(d domain.PurchaseOrderItem) models.PurchaseOrderItem {
	return models.PurchaseOrderItem{
		PurchaseOrderItemID: d.PurchaseOrderItemID,
		PurchaseOrderID:     d.PurchaseOrderID,
		ProductID:           d.ProductID,
		Quantity:            d.Quantity,
		UnitCost:            d.UnitCost,
		LineTotal:           d.LineTotal,
	}
}

// ToDomainPurchaseOrderItems converts model PurchaseOrderItems to domain PurchaseOrderItems
func ToDomainPurchaseOrderItems(ms []models.PurchaseOrderItem) []domain.PurchaseOrderItem {
	ds := make([]domain.PurchaseOrderItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.PurchaseOrderItem{
			PurchaseOrderItemID: m.PurchaseOrderItemID,
			PurchaseOrderID:     m.PurchaseOrderID,
			ProductID:           m.ProductID,
			Quantity:            m.Quantity,
			UnitCost:            m.UnitCost,
			LineTotal:           m.LineTotal,
		}
	}
	return ds
}
