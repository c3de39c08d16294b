package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DocumentSequencer hands out document numbers.
type DocumentSequencer interface {
	// NextDocumentNumber allocates the next number of kind for the workplace on the calendar day of at.
	// It must run inside the transaction that inserts the document: the counter row stays locked
	// until tx ends, and a rollback returns the value.
	NextDocumentNumber(ctx context.Context, tx pgx.Tx, workplaceID string, kind domain.DocumentKind, at time.Time) (string, error)
}
