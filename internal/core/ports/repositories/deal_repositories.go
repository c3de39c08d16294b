package repositories

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DealReader defines read operations for deal data
type DealReader interface {
	// FindDealByID retrieves a deal with its contact and company, scoped to the workplace.
	FindDealByID(ctx context.Context, workplaceID, dealID string) (*domain.Deal, error)
}

// DealWriter defines write operations for deal data
type DealWriter interface {
	// SaveDeal persists a new deal. Linked contact and company must belong to the same workplace.
	SaveDeal(ctx context.Context, deal domain.Deal) error
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}

// PipelineRepository reads the data behind the pipeline view.
type PipelineRepository interface {
	// GetPipelineData returns per-stage value totals and the open deals of the workplace, ordered by
	// creation. Both come from one snapshot, so totals always match the listed deals.
	GetPipelineData(ctx context.Context, workplaceID string) (map[domain.DealStage]decimal.Decimal, []domain.Deal, error)
}
