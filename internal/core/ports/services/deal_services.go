package services

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/dto"
)

// DealSvcFacade defines operations on deals
type DealSvcFacade interface {
	// CreateDeal opens a deal in the workplace.
	CreateDeal(ctx context.Context, workplaceID string, req dto.CreateDealRequest, userID string) (*domain.Deal, error)

	// GetDealByID retrieves a deal of the workplace.
	GetDealByID(ctx context.Context, workplaceID, dealID, userID string) (*domain.Deal, error)
}

// PipelineSvc builds the per-stage view of open deals
type PipelineSvc interface {
	// GetPipeline groups the workplace's open deals by stage with value totals.
	GetPipeline(ctx context.Context, workplaceID, userID string) (*domain.PipelineView, error)
}
