package repositories

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale and its items, scoped to the workplace.
	FindSaleByID(ctx context.Context, workplaceID, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sales, newest first, plus a token for the next page.
	ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// CreateSale numbers and persists a sale, decrementing product stock, in one transaction.
	CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
