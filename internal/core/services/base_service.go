package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/middleware"
	"github.com/SscSPs/crm_pos_app/internal/utils/docnumber"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkplaceAuthorizer portssvc.WorkplaceAuthorizerSvc
	Clock               func() time.Time
	// Location decides the business calendar day; nil means UTC.
	Location *time.Location
}

// ServiceOption is a functional option for configuring services
type ServiceOption func(*BaseService)

// WithWorkplaceAuthorizer adds workplace authorizer dependency
func WithWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithClock overrides the time source used for audit fields and document dates.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithLocation sets the time zone whose calendar day dates business events.
// Use the same zone that dates document numbers.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.Location = loc
	}
}

func newBaseService(opts []ServiceOption) BaseService {
	base := BaseService{}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Now returns the current time in UTC according to the service clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Today returns the current calendar day in the service location, as midnight UTC of that date.
func (s *BaseService) Today() time.Time {
	return docnumber.Day(s.Now(), s.Location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a workplace.
// Without an authorizer every request is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	if s.WorkplaceAuthorizer == nil {
		s.LogError(ctx, errNoAuthorizer, "Workplace authorizer not configured",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("required_role", string(requiredRole)))
		return errNoAuthorizer
	}
	return s.WorkplaceAuthorizer.AuthorizeUserAction(ctx, userID, workplaceID, requiredRole)
}
