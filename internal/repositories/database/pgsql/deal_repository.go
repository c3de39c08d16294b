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

type PgxDealRepository struct {
	BaseRepository
}

// newPgxDealRepository creates a new repository for deals.
func newPgxDealRepository(pool *pgxpool.Pool) *PgxDealRepository {
	return &PgxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.DealRepositoryFacade = (*PgxDealRepository)(nil)
	_ portsrepo.PipelineRepository   = (*PgxDealRepository)(nil)
)

// dealSelectQuery joins the linked contact and company. The joins also match on workplace so a
// foreign row can never leak into a deal's projection.
const dealSelectQuery = `
SELECT
	d.deal_id, d.workplace_id, d.title, d.description, d.value, d.stage, d.probability,
	d.expected_close_date, d.actual_close_date, d.notes, d.contact_id, d.company_id,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by,
	c.first_name AS contact_first_name, c.last_name AS contact_last_name,
	co.name AS company_name
FROM deals d
LEFT JOIN contacts c ON c.contact_id = d.contact_id AND c.workplace_id = d.workplace_id
LEFT JOIN companies co ON co.company_id = d.company_id AND co.workplace_id = d.workplace_id
`

// SaveDeal inserts a deal after checking its contact and company belong to the same workplace.
func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) error {
	if deal.ContactID != nil {
		ok, err := belongsToWorkplace(ctx, r.Pool, "contacts", "contact_id", *deal.ContactID, deal.WorkplaceID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NewValidationError("contact " + *deal.ContactID + " not found in workplace")
		}
	}
	if deal.CompanyID != nil {
		ok, err := belongsToWorkplace(ctx, r.Pool, "companies", "company_id", *deal.CompanyID, deal.WorkplaceID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NewValidationError("company " + *deal.CompanyID + " not found in workplace")
		}
	}

	m := mapping.ToModelDeal(deal)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO deals (
			deal_id, workplace_id, title, description, value, stage, probability,
			expected_close_date, actual_close_date, notes, contact_id, company_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
		m.DealID, m.WorkplaceID, m.Title, m.Description, m.Value, m.Stage, m.Probability,
		m.ExpectedCloseDate, m.ActualCloseDate, m.Notes, m.ContactID, m.CompanyID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save deal "+deal.DealID)
	}
	return nil
}

// FindDealByID retrieves a deal with its contact and company.
func (r *PgxDealRepository) FindDealByID(ctx context.Context, workplaceID, dealID string) (*domain.Deal, error) {
	rows, err := r.Pool.Query(ctx, dealSelectQuery+`WHERE d.deal_id = $1 AND d.workplace_id = $2;`, dealID, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query deal "+dealID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Deal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("deal " + dealID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan deal "+dealID, err)
	}
	deal := mapping.ToDomainDeal(m)
	return &deal, nil
}
