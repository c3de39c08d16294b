package dto

import (
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Purchase Order DTOs ---

// CreatePurchaseOrderItemRequest is one line of a new purchase order.
type CreatePurchaseOrderItemRequest struct {
	ProductID string           `json:"productID" binding:"required"`
	Quantity  int64            `json:"quantity" binding:"required,gt=0"`
	UnitCost  *decimal.Decimal `json:"unitCost" binding:"required"`
}

// CreatePurchaseOrderRequest defines data for placing a purchase order.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                           `json:"supplierID" binding:"required"`
	ExpectedDate *time.Time                       `json:"expectedDate"`
	Notes        string                           `json:"notes"`
	Items        []CreatePurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseOrderItemResponse defines data returned for a purchase order line.
type PurchaseOrderItemResponse struct {
	PurchaseOrderItemID string          `json:"purchaseOrderItemID"`
	ProductID           string          `json:"productID"`
	Quantity            int64           `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}

// PurchaseOrderResponse defines data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string                      `json:"purchaseOrderID"`
	WorkplaceID     string                      `json:"workplaceID"`
	Number          string                      `json:"number"`
	SupplierID      string                      `json:"supplierID"`
	Status          domain.PurchaseOrderStatus  `json:"status"`
	ExpectedDate    *time.Time                  `json:"expectedDate,omitempty"`
	ReceivedAt      *time.Time                  `json:"receivedAt,omitempty"`
	Items           []PurchaseOrderItemResponse `json:"items"`
	Total           decimal.Decimal             `json:"total"`
	Notes           string                      `json:"notes"`
	CreatedAt       time.Time                   `json:"createdAt"`
	CreatedBy       string                      `json:"createdBy"`
	LastUpdatedAt   time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy   string                      `json:"lastUpdatedBy"`
}

// ToPurchaseOrderResponse converts domain.PurchaseOrder to DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i, it := range po.Items {
		items[i] = PurchaseOrderItemResponse{
			PurchaseOrderItemID: it.PurchaseOrderItemID,
			ProductID:           it.ProductID,
			Quantity:            it.Quantity,
			UnitCost:            it.UnitCost,
			LineTotal:           it.LineTotal,
		}
	}
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		WorkplaceID:     po.WorkplaceID,
		Number:          po.Number,
		SupplierID:      po.SupplierID,
		Status:          po.Status,
		ExpectedDate:    po.ExpectedDate,
		ReceivedAt:      po.ReceivedAt,
		Items:           items,
		Total:           po.Total,
		Notes:           po.Notes,
		CreatedAt:       po.CreatedAt,
		CreatedBy:       po.CreatedBy,
		LastUpdatedAt:   po.LastUpdatedAt,
		LastUpdatedBy:   po.LastUpdatedBy,
	}
}

// ListPurchaseOrdersResponse wraps a page of purchase orders.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrderResponse `json:"purchaseOrders"`
	NextToken      *string                 `json:"nextToken,omitempty"`
}

// ToListPurchaseOrdersResponse converts a page of domain.PurchaseOrder to DTO.
func ToListPurchaseOrdersResponse(pos []domain.PurchaseOrder, nextToken *string) ListPurchaseOrdersResponse {
	list := make([]PurchaseOrderResponse, len(pos))
	for i := range pos {
		list[i] = ToPurchaseOrderResponse(&pos[i])
	}
	return ListPurchaseOrdersResponse{PurchaseOrders: list, NextToken: nextToken}
}
