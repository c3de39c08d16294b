package services

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale of the workplace.
	GetSaleByID(ctx context.Context, workplaceID, saleID, userID string) (*domain.Sale, error)

	// ListSales retrieves a page of the workplace's sales, newest first.
	ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.Sale, *string, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	// CreateSale computes totals, assigns an invoice number and records the sale.
	CreateSale(ctx context.Context, workplaceID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
