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

var hundred = decimal.NewFromInt(100)

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, opts ...ServiceOption) portssvc.SaleSvcFacade {
	return &saleService{
		BaseService: newBaseService(opts),
		saleRepo:    saleRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale validates the request, prices every line and hands the sale to the repository,
// which numbers it and books the stock movement atomically.
func (s *saleService) CreateSale(ctx context.Context, workplaceID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	sale, err := s.buildSale(workplaceID, req, userID)
	if err != nil {
		return nil, err
	}

	created, err := s.saleRepo.CreateSale(ctx, *sale)
	if err != nil {
		if errors.Is(err, apperrors.ErrContention) {
			s.LogInfo(ctx, "Sale creation lost a lock race",
				slog.String("workplace_id", workplaceID))
		} else if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create sale",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Sale created successfully",
		slog.String("sale_id", created.SaleID),
		slog.String("number", created.Number),
		slog.String("workplace_id", workplaceID))
	return created, nil
}

func (s *saleService) buildSale(workplaceID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, validationErrorf("invalid payment method %q", req.PaymentMethod)
	}
	if len(req.Items) == 0 {
		return nil, validationErrorf("sale must have at least one item")
	}

	discount := decimal.Zero
	if req.DiscountTotal != nil {
		discount = *req.DiscountTotal
	}
	if discount.IsNegative() {
		return nil, validationErrorf("discount must not be negative")
	}

	now := s.Now()
	saleID := uuid.NewString()
	items := make([]domain.SaleItem, len(req.Items))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for i, it := range req.Items {
		if it.ProductID == "" {
			return nil, validationErrorf("item %d: product is required", i+1)
		}
		if it.Quantity <= 0 {
			return nil, validationErrorf("item %d: quantity must be positive", i+1)
		}
		if it.UnitPrice == nil || it.UnitPrice.IsNegative() {
			return nil, validationErrorf("item %d: unit price must not be negative", i+1)
		}
		rate := decimal.Zero
		if it.TaxRate != nil {
			rate = *it.TaxRate
		}
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return nil, validationErrorf("item %d: tax rate must be between 0 and 100", i+1)
		}

		line := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		subtotal = subtotal.Add(line)
		taxTotal = taxTotal.Add(line.Mul(rate).Div(hundred))
		items[i] = domain.SaleItem{
			SaleItemID:  uuid.NewString(),
			SaleID:      saleID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   *it.UnitPrice,
			TaxRate:     rate,
			LineTotal:   line,
		}
	}
	taxTotal = taxTotal.Round(2)

	total := subtotal.Add(taxTotal).Sub(discount)
	if total.IsNegative() {
		return nil, validationErrorf("discount %s exceeds sale amount %s", discount, subtotal.Add(taxTotal))
	}

	return &domain.Sale{
		SaleID:        saleID,
		WorkplaceID:   workplaceID,
		ContactID:     req.ContactID,
		Status:        domain.SaleCompleted,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Subtotal:      subtotal,
		TaxTotal:      taxTotal,
		DiscountTotal: discount,
		Total:         total,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// GetSaleByID retrieves a sale of the workplace.
func (s *saleService) GetSaleByID(ctx context.Context, workplaceID, saleID, userID string) (*domain.Sale, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, workplaceID, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale",
				slog.String("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

// ListSales retrieves a page of the workplace's sales, newest first.
func (s *saleService) ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.Sale, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	sales, next, err := s.saleRepo.ListSales(ctx, workplaceID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales",
			slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}
	return sales, next, nil
}
