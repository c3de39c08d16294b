package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type purchaseOrderService struct {
	BaseService
	poRepo portsrepo.PurchaseOrderRepositoryFacade
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(poRepo portsrepo.PurchaseOrderRepositoryFacade, opts ...ServiceOption) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{
		BaseService: newBaseService(opts),
		poRepo:      poRepo,
	}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

// CreatePurchaseOrder prices the order lines and hands the order to the repository for numbering.
func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, workplaceID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.SupplierID == "" {
		return nil, validationErrorf("supplier is required")
	}
	if len(req.Items) == 0 {
		return nil, validationErrorf("purchase order must have at least one item")
	}

	now := s.Now()
	poID := uuid.NewString()
	items := make([]domain.PurchaseOrderItem, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		if it.ProductID == "" {
			return nil, validationErrorf("item %d: product is required", i+1)
		}
		if it.Quantity <= 0 {
			return nil, validationErrorf("item %d: quantity must be positive", i+1)
		}
		if it.UnitCost == nil || it.UnitCost.IsNegative() {
			return nil, validationErrorf("item %d: unit cost must not be negative", i+1)
		}
		line := it.UnitCost.Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(line)
		items[i] = domain.PurchaseOrderItem{
			PurchaseOrderItemID: uuid.NewString(),
			PurchaseOrderID:     poID,
			ProductID:           it.ProductID,
			Quantity:            it.Quantity,
			UnitCost:            *it.UnitCost,
			LineTotal:           line,
		}
	}

	po := domain.PurchaseOrder{
		PurchaseOrderID: poID,
		WorkplaceID:     workplaceID,
		SupplierID:      req.SupplierID,
		Status:          domain.PurchaseOrderOrdered,
		ExpectedDate:    req.ExpectedDate,
		Items:           items,
		Total:           total,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	created, err := s.poRepo.CreatePurchaseOrder(ctx, po)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrContention) {
			s.LogError(ctx, err, "Failed to create purchase order",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order created successfully",
		slog.String("purchase_order_id", created.PurchaseOrderID),
		slog.String("number", created.Number),
		slog.String("workplace_id", workplaceID))
	return created, nil
}

// ReceivePurchaseOrder books the ordered quantities into stock and returns the updated order.
func (s *purchaseOrderService) ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := s.poRepo.ReceivePurchaseOrder(ctx, workplaceID, purchaseOrderID, userID, s.Now()); err != nil {
		s.logTransitionError(ctx, err, "Failed to receive purchase order", purchaseOrderID)
		return nil, err
	}
	s.LogInfo(ctx, "Purchase order received",
		slog.String("purchase_order_id", purchaseOrderID))
	return s.poRepo.FindPurchaseOrderByID(ctx, workplaceID, purchaseOrderID)
}

// CancelPurchaseOrder cancels an order that has not been received. Its number stays used.
func (s *purchaseOrderService) CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := s.poRepo.CancelPurchaseOrder(ctx, workplaceID, purchaseOrderID, userID, s.Now()); err != nil {
		s.logTransitionError(ctx, err, "Failed to cancel purchase order", purchaseOrderID)
		return nil, err
	}
	s.LogInfo(ctx, "Purchase order cancelled",
		slog.String("purchase_order_id", purchaseOrderID))
	return s.poRepo.FindPurchaseOrderByID(ctx, workplaceID, purchaseOrderID)
}

func (s *purchaseOrderService) logTransitionError(ctx context.Context, err error, msg, purchaseOrderID string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		return
	}
	s.LogError(ctx, err, msg, slog.String("purchase_order_id", purchaseOrderID))
}

// GetPurchaseOrderByID retrieves a purchase order of the workplace.
func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.poRepo.FindPurchaseOrderByID(ctx, workplaceID, purchaseOrderID)
}

// ListPurchaseOrders retrieves a page of the workplace's purchase orders, newest first.
func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.PurchaseOrder, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	pos, next, err := s.poRepo.ListPurchaseOrders(ctx, workplaceID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders",
			slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}
	return pos, next, nil
}
