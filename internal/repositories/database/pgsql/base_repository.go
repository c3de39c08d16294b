package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// BeginWithLockTimeout starts a transaction in which any single lock wait gives up after timeout.
func (r *BaseRepository) BeginWithLockTimeout(ctx context.Context, timeout time.Duration) (pgx.Tx, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		// set_config with is_local=true behaves like SET LOCAL but accepts a bind parameter.
		ms := strconv.FormatInt(timeout.Milliseconds(), 10) + "ms"
		if _, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, ms); err != nil {
			_ = tx.Rollback(ctx)
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to set lock timeout", err)
		}
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// mapPgError turns driver errors into application errors. Lock waits that were cut short
// become ErrContention; constraint violations become duplicate or validation errors.
func mapPgError(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgDeadlockDetected, pgSerializationFailure:
			return apperrors.NewContentionError(message+": concurrent update, try again", err)
		case pgUniqueViolation:
			return apperrors.NewAppError(http.StatusConflict, message+": "+pgErr.ConstraintName+" already taken", errors.Join(apperrors.ErrDuplicate, err))
		case pgForeignKeyViolation, pgCheckViolation:
			return apperrors.NewAppError(http.StatusBadRequest, message+": "+pgErr.ConstraintName+" violated", errors.Join(apperrors.ErrValidation, err))
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}
