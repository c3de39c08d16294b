package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/utils"
)

type pipelineService struct {
	BaseService
	pipelineRepo    portsrepo.PipelineRepository
	workplaceReader portssvc.WorkplaceReaderSvc
}

// NewPipelineService creates the pipeline aggregator. The workplace reader supplies the currency
// used for formatted values.
func NewPipelineService(pipelineRepo portsrepo.PipelineRepository, workplaceReader portssvc.WorkplaceReaderSvc, opts ...ServiceOption) portssvc.PipelineSvc {
	return &pipelineService{
		BaseService:     newBaseService(opts),
		pipelineRepo:    pipelineRepo,
		workplaceReader: workplaceReader,
	}
}

var _ portssvc.PipelineSvc = (*pipelineService)(nil)

// GetPipeline groups the workplace's open deals by stage. Every pipeline stage is present even
// when it holds no deals. The view is computed on each call and never cached.
func (s *pipelineService) GetPipeline(ctx context.Context, workplaceID, userID string) (*domain.PipelineView, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	workplace, err := s.workplaceReader.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	totals, deals, err := s.pipelineRepo.GetPipelineData(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pipeline data",
			slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}

	view := domain.NewPipelineView()
	for _, d := range deals {
		stage := view.Stage(d.Stage)
		if stage == nil {
			continue
		}
		stage.Deals = append(stage.Deals, toPipelineDeal(d, workplace.CurrencyCode))
	}
	for i := range view.Stages {
		if total, ok := totals[view.Stages[i].Stage]; ok {
			view.Stages[i].TotalValue = total
		}
	}

	s.LogDebug(ctx, "Pipeline computed",
		slog.String("workplace_id", workplaceID),
		slog.Int("open_deals", len(deals)))
	return view, nil
}

func toPipelineDeal(d domain.Deal, currencyCode string) domain.PipelineDeal {
	return domain.PipelineDeal{
		ID:                d.DealID,
		Title:             d.Title,
		Description:       d.Description,
		Value:             d.Value,
		FormattedValue:    utils.FormatOptionalMoney(d.Value, currencyCode),
		Stage:             d.Stage,
		StageLabel:        d.Stage.Label(),
		Probability:       d.Probability,
		WeightedValue:     d.WeightedValue(),
		ExpectedCloseDate: d.ExpectedCloseDate,
		ActualCloseDate:   d.ActualCloseDate,
		Notes:             d.Notes,
		IsOpen:            d.IsOpen(),
		IsClosed:          d.IsClosed(),
		Contact:           d.Contact,
		Company:           d.Company,
	}
}
