package services

import (
	"fmt"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
)

var errNoAuthorizer = fmt.Errorf("%w: no workplace authorizer configured", apperrors.ErrForbidden)

func validationErrorf(format string, args ...any) error {
	return apperrors.NewValidationError(fmt.Sprintf(format, args...))
}
