package services

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/dto"
)

// PurchaseOrderReaderSvc defines read operations for purchase orders
type PurchaseOrderReaderSvc interface {
	// GetPurchaseOrderByID retrieves a purchase order of the workplace.
	GetPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a page of the workplace's purchase orders, newest first.
	ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.PurchaseOrder, *string, error)
}

// PurchaseOrderWriterSvc defines write operations for purchase orders
type PurchaseOrderWriterSvc interface {
	// CreatePurchaseOrder computes the total, assigns a PO number and records the order.
	CreatePurchaseOrder(ctx context.Context, workplaceID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// ReceivePurchaseOrder books the ordered goods into stock.
	ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error)

	// CancelPurchaseOrder cancels an order that has not been received.
	CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error)
}

// PurchaseOrderSvcFacade combines all purchase-order-related service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	PurchaseOrderWriterSvc
}
