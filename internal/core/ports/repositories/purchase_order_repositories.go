package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase order data
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a purchase order and its items, scoped to the workplace.
	FindPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a page of purchase orders, newest first, plus a token for the next page.
	ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error)
}

// PurchaseOrderWriter defines write operations for purchase order data
type PurchaseOrderWriter interface {
	// CreatePurchaseOrder numbers and persists a purchase order in one transaction.
	CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error)

	// ReceivePurchaseOrder moves an ORDERED purchase order to RECEIVED and adds its quantities to stock.
	ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error

	// CancelPurchaseOrder moves an ORDERED purchase order to CANCELLED.
	CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error
}

// PurchaseOrderRepositoryFacade combines all purchase-order-related repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}

// PurchaseOrderRepositoryWithTx extends PurchaseOrderRepositoryFacade with transaction capabilities
type PurchaseOrderRepositoryWithTx interface {
	PurchaseOrderRepositoryFacade
	TransactionManager
}
