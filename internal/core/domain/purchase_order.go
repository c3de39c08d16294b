package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus indicates the state of a purchase order.
type PurchaseOrderStatus string

const (
	PurchaseOrderOrdered   PurchaseOrderStatus = "ORDERED"
	PurchaseOrderReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

// PurchaseOrder is an order placed with a supplier. Number is assigned once, at creation.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"`
	WorkplaceID     string              `json:"workplaceID"`
	Number          string              `json:"number"` // PO-YYYYMMDD-NNNN
	SupplierID      string              `json:"supplierID"`
	Status          PurchaseOrderStatus `json:"status"`
	ExpectedDate    *time.Time          `json:"expectedDate,omitempty"`
	ReceivedAt      *time.Time          `json:"receivedAt,omitempty"`
	Items           []PurchaseOrderItem `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Notes           string              `json:"notes"`
	AuditFields
}

// PurchaseOrderItem is a single product line on a purchase order.
type PurchaseOrderItem struct {
	PurchaseOrderItemID string          `json:"purchaseOrderItemID"`
	PurchaseOrderID     string          `json:"purchaseOrderID"`
	ProductID           string          `json:"productID"`
	Quantity            int64           `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}
