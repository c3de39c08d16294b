package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a row of the purchase_orders table.
type PurchaseOrder struct {
	PurchaseOrderID string          `db:"purchase_order_id"`
	WorkplaceID     string          `db:"workplace_id"`
	Number          string          `db:"number"`
	SupplierID      string          `db:"supplier_id"`
	Status          string          `db:"status"`
	ExpectedDate    *time.Time      `db:"expected_date"` // Nullable
	ReceivedAt      *time.Time      `db:"received_at"`   // Nullable
	Total           decimal.Decimal `db:"total"`
	Notes           string          `db:"notes"`
	AuditFields
}

// PurchaseOrderItem is a row of the purchase_order_items table.
type PurchaseOrderItem struct {
	PurchaseOrderItemID string          `db:"purchase_order_item_id"`
	PurchaseOrderID     string          `db:"purchase_order_id"`
	ProductID           string          `db:"product_id"`
	Quantity            int64           `db:"quantity"`
	UnitCost            decimal.Decimal `db:"unit_cost"`
	LineTotal           decimal.Decimal `db:"line_total"`
}
