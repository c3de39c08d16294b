package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/crm_pos_app/internal/utils/docnumber"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxSequenceRepository allocates document numbers from the document_sequences counter table.
type PgxSequenceRepository struct {
	location *time.Location
}

func newPgxSequenceRepository(location *time.Location) *PgxSequenceRepository {
	if location == nil {
		location = time.UTC
	}
	return &PgxSequenceRepository{location: location}
}

var _ portsrepo.DocumentSequencer = (*PgxSequenceRepository)(nil)

// The upsert both creates the day's row and takes its row lock. Concurrent callers for the same
// workplace, kind and day queue behind it until the holding transaction ends; a rollback
// discards the increment, so committed numbers stay gapless.
const nextSequenceQuery = `
	INSERT INTO document_sequences (workplace_id, document_kind, sequence_date, last_value)
	VALUES ($1, $2, $3, 1)
	ON CONFLICT (workplace_id, document_kind, sequence_date)
	DO UPDATE SET last_value = document_sequences.last_value + 1
	RETURNING last_value;
`

// NextDocumentNumber implements portsrepo.DocumentSequencer.
func (r *PgxSequenceRepository) NextDocumentNumber(ctx context.Context, tx pgx.Tx, workplaceID string, kind domain.DocumentKind, at time.Time) (string, error) {
	if !kind.IsValid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown document kind %q", kind))
	}
	day := docnumber.Day(at, r.location)

	var next int64
	err := tx.QueryRow(ctx, nextSequenceQuery, workplaceID, string(kind), day).Scan(&next)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			// last_value is capped at docnumber.MaxSequence by a CHECK constraint.
			return "", sequenceExhausted(kind, err)
		}
		return "", mapPgError(err, "failed to allocate "+string(kind)+" number")
	}

	number, err := docnumber.Format(kind.Prefix(), day, next)
	if err != nil {
		return "", sequenceExhausted(kind, err)
	}
	return number, nil
}

func sequenceExhausted(kind domain.DocumentKind, cause error) error {
	return apperrors.NewAppError(http.StatusUnprocessableEntity,
		fmt.Sprintf("daily %s number limit of %d reached", kind, docnumber.MaxSequence),
		errors.Join(apperrors.ErrValidation, docnumber.ErrSequenceOutOfRange, cause))
}
