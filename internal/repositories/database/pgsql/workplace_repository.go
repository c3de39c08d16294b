package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/crm_pos_app/internal/models"
	"github.com/SscSPs/crm_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryWithTx {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryWithTx
var _ portsrepo.WorkplaceRepositoryWithTx = (*PgxWorkplaceRepository)(nil)

const workplaceSelectQuery = `
SELECT
	w.workplace_id, w.name, w.description, w.currency_code, w.is_active,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workplaces w
`

// getWorkplaces runs the shared select with the given filter appended.
func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	rows, err := r.Pool.Query(ctx, workplaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workplaces", err)
	}
	modelWorkplaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Workplace])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect workplace rows", err)
	}

	workplaces := make([]domain.Workplace, len(modelWorkplaces))
	for i, m := range modelWorkplaces {
		workplaces[i] = mapping.ToDomainWorkplace(m)
	}
	return workplaces, nil
}

// SaveWorkplace inserts the workplace and its creator's membership in one transaction, so a
// workplace never exists without an admin.
func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.UserWorkplace) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelWorkplace(workplace)
	_, err = tx.Exec(ctx, `
		INSERT INTO workplaces (
			workplace_id, name, description, currency_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.WorkplaceID, m.Name, m.Description, m.CurrencyCode, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save workplace "+workplace.WorkplaceID)
	}

	if err := insertMembership(ctx, tx, creator); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.NewNotFoundError("workplace " + workplaceID + " not found")
	}
	return &workplaces[0], nil
}

// AddUserToWorkplace adds a member, or changes the role of an existing one.
func (r *PgxWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	return insertMembership(ctx, r.Pool, membership)
}

func insertMembership(ctx context.Context, db querier, membership domain.UserWorkplace) error {
	query := `
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workplace_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := db.Exec(ctx, query,
		membership.UserID,
		membership.WorkplaceID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to add user "+membership.UserID+" to workplace "+membership.WorkplaceID)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM user_workplaces
		WHERE user_id = $1 AND workplace_id = $2;
	`
	var uw domain.UserWorkplace
	err := r.Pool.QueryRow(ctx, query, userID, workplaceID).Scan(
		&uw.UserID,
		&uw.WorkplaceID,
		&uw.Role,
		&uw.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user is not a member of workplace " + workplaceID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	return &uw, nil
}

// ListWorkplacesByUserID lists the active workplaces the user is a member of, by name.
func (r *PgxWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	return r.getWorkplaces(ctx, `
		JOIN user_workplaces uw ON w.workplace_id = uw.workplace_id
		WHERE uw.user_id = $1 AND w.is_active = true
		ORDER BY w.name, w.workplace_id;`, userID)
}
