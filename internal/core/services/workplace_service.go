package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceService creates a new workplace service. It is its own workplace authorizer.
func NewWorkplaceService(workplaceRepo portsrepo.WorkplaceRepositoryFacade, opts ...ServiceOption) portssvc.WorkplaceSvcFacade {
	s := &workplaceService{
		BaseService:   newBaseService(opts),
		workplaceRepo: workplaceRepo,
	}
	s.WorkplaceAuthorizer = s
	return s
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// FindWorkplaceByID retrieves a workplace by its ID
func (s *workplaceService) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace by ID",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}
	return workplace, nil
}

// ListUserWorkplaces retrieves all active workplaces a user belongs to
func (s *workplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if workplaces == nil {
		return []domain.Workplace{}, nil
	}

	s.LogDebug(ctx, "Workplaces listed successfully",
		slog.Int("count", len(workplaces)),
		slog.String("user_id", userID))
	return workplaces, nil
}

// CreateWorkplace creates a new workplace and makes its creator an ADMIN in the same transaction.
func (s *workplaceService) CreateWorkplace(ctx context.Context, name, description, currencyCode, creatorUserID string) (*domain.Workplace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("workplace name is required")
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return nil, validationErrorf("invalid currency code %q", currencyCode)
	}

	now := s.Now()
	workplace := domain.Workplace{
		WorkplaceID:  uuid.NewString(),
		Name:         name,
		Description:  description,
		CurrencyCode: unit.String(),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	creator := domain.UserWorkplace{
		UserID:      creatorUserID,
		WorkplaceID: workplace.WorkplaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace, creator); err != nil {
		s.LogError(ctx, err, "Failed to save workplace",
			slog.String("workplace_name", name))
		return nil, fmt.Errorf("failed to create workplace: %w", err)
	}

	s.LogInfo(ctx, "Workplace created successfully",
		slog.String("workplace_id", workplace.WorkplaceID),
		slog.String("creator_id", creatorUserID))
	return &workplace, nil
}

// AddUserToWorkplace adds a user to a workplace with a specific role. Only admins may add users.
func (s *workplaceService) AddUserToWorkplace(ctx context.Context, addingUserID, targetUserID, workplaceID string, role domain.UserWorkplaceRole) (*domain.UserWorkplace, error) {
	if !role.IsValid() {
		return nil, validationErrorf("invalid role %q", role)
	}
	if err := s.AuthorizeUserAction(ctx, addingUserID, workplaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	membership := domain.UserWorkplace{
		UserID:      targetUserID,
		WorkplaceID: workplaceID,
		Role:        role,
		JoinedAt:    s.Now(),
	}
	if err := s.workplaceRepo.AddUserToWorkplace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workplace",
			slog.String("target_user_id", targetUserID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "User added to workplace successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("workplace_id", workplaceID),
		slog.String("role", string(role)))
	return &membership, nil
}

// AuthorizeUserAction checks if a user has required permissions for a workplace
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return fmt.Errorf("%w: user is not a member of workplace %s", apperrors.ErrForbidden, workplaceID)
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return fmt.Errorf("%w: role %s required", apperrors.ErrForbidden, requiredRole)
	}
	return nil
}
