package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/google/uuid"
)

type dealService struct {
	BaseService
	dealRepo portsrepo.DealRepositoryFacade
}

// NewDealService creates a new deal service.
func NewDealService(dealRepo portsrepo.DealRepositoryFacade, opts ...ServiceOption) portssvc.DealSvcFacade {
	return &dealService{
		BaseService: newBaseService(opts),
		dealRepo:    dealRepo,
	}
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

// CreateDeal opens a deal. Deals created directly in a closed stage get today as their close date.
func (s *dealService) CreateDeal(ctx context.Context, workplaceID string, req dto.CreateDealRequest, userID string) (*domain.Deal, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErrorf("deal title is required")
	}
	if !req.Stage.IsValid() {
		return nil, validationErrorf("invalid deal stage %q", req.Stage)
	}
	probability := 0
	if req.Probability != nil {
		probability = *req.Probability
	}
	if probability < 0 || probability > 100 {
		return nil, validationErrorf("probability must be between 0 and 100")
	}
	if req.Value != nil && req.Value.IsNegative() {
		return nil, validationErrorf("deal value must not be negative")
	}

	now := s.Now()
	deal := domain.Deal{
		DealID:            uuid.NewString(),
		WorkplaceID:       workplaceID,
		Title:             title,
		Description:       req.Description,
		Value:             req.Value,
		Stage:             req.Stage,
		Probability:       probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		Notes:             req.Notes,
		ContactID:         req.ContactID,
		CompanyID:         req.CompanyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if deal.IsClosed() {
		closed := s.Today()
		deal.ActualCloseDate = &closed
	}

	if err := s.dealRepo.SaveDeal(ctx, deal); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save deal",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Deal created successfully",
		slog.String("deal_id", deal.DealID),
		slog.String("stage", string(deal.Stage)))
	return s.dealRepo.FindDealByID(ctx, workplaceID, deal.DealID)
}

// GetDealByID retrieves a deal of the workplace with its contact and company.
func (s *dealService) GetDealByID(ctx context.Context, workplaceID, dealID, userID string) (*domain.Deal, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	deal, err := s.dealRepo.FindDealByID(ctx, workplaceID, dealID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find deal",
				slog.String("deal_id", dealID))
		}
		return nil, err
	}
	return deal, nil
}
