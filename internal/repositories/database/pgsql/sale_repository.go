package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/crm_pos_app/internal/models"
	"github.com/SscSPs/crm_pos_app/internal/utils/mapping"
	"github.com/SscSPs/crm_pos_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
	sequencer   portsrepo.DocumentSequencer
	lockTimeout time.Duration
}

// newPgxSaleRepository creates a new repository for sales. Numbers come from sequencer.
func newPgxSaleRepository(pool *pgxpool.Pool, sequencer portsrepo.DocumentSequencer, lockTimeout time.Duration) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequencer:      sequencer,
		lockTimeout:    lockTimeout,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `
	sale_id, workplace_id, number, contact_id, status, payment_method,
	subtotal, tax_total, discount_total, total, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

const saleItemColumns = `
	sale_item_id, sale_id, product_id, description, quantity, unit_price, tax_rate, line_total
`

// CreateSale locks the sold products, checks and decrements their stock, takes the next invoice
// number and inserts the sale with its items. Everything happens in one transaction: if any step
// fails nothing is written and the number is not consumed.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	if len(sale.Items) == 0 {
		return nil, apperrors.NewValidationError("sale must have at least one item")
	}

	tx, err := r.BeginWithLockTimeout(ctx, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if sale.ContactID != nil {
		ok, err := belongsToWorkplace(ctx, tx, "contacts", "contact_id", *sale.ContactID, sale.WorkplaceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NewValidationError("contact " + *sale.ContactID + " not found in workplace")
		}
	}

	// 1. Lock products and check stock
	required := make(map[string]int64, len(sale.Items))
	productIDs := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		if _, seen := required[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		required[item.ProductID] += item.Quantity
	}
	products, err := lockProducts(ctx, tx, sale.WorkplaceID, productIDs)
	if err != nil {
		return nil, err
	}
	if err := requireProducts(products, productIDs); err != nil {
		return nil, err
	}
	for _, id := range productIDs {
		if p := products[id]; p.StockQuantity < required[id] {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"insufficient stock for product %s: available %d, requested %d", p.Name, p.StockQuantity, required[id]))
		}
	}

	// 2. Take the number. This is the last lock acquired, so the counter row is held for as
	// short a time as possible.
	number, err := r.sequencer.NextDocumentNumber(ctx, tx, sale.WorkplaceID, domain.DocumentKindSale, sale.CreatedAt)
	if err != nil {
		return nil, err
	}
	sale.Number = number

	// 3. Insert the sale
	m := mapping.ToModelSale(sale)
	_, err = tx.Exec(ctx, `
		INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		m.SaleID, m.WorkplaceID, m.Number, m.ContactID, m.Status, m.PaymentMethod,
		m.Subtotal, m.TaxTotal, m.DiscountTotal, m.Total, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to insert sale "+sale.SaleID)
	}

	// 4. Items and stock movements in one round trip
	sale.Items = slices.Clone(sale.Items)
	batch := &pgx.Batch{}
	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.SaleID
		if item.Description == "" {
			item.Description = products[item.ProductID].Name
		}
		mi := mapping.ToModelSaleItem(*item)
		batch.Queue(`
			INSERT INTO sale_items (`+saleItemColumns+`, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			mi.SaleItemID, mi.SaleID, mi.ProductID, mi.Description, mi.Quantity, mi.UnitPrice, mi.TaxRate, mi.LineTotal, i,
		)
	}
	for _, id := range productIDs {
		batch.Queue(`UPDATE products SET stock_quantity = stock_quantity - $1 WHERE product_id = $2;`, required[id], id)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, mapPgError(err, "failed to insert items for sale "+sale.SaleID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sale, nil
}

// FindSaleByID retrieves a sale and its items.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, workplaceID, saleID string) (*domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1 AND workplace_id = $2;`, saleID, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query sale "+saleID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sale "+saleID, err)
	}

	items, err := r.findItemsBySaleIDs(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}
	sale := mapping.ToDomainSale(m, items[saleID])
	return &sale, nil
}

// ListSales lists sales newest first using token-based pagination.
func (r *PgxSaleRepository) ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	args := []any{workplaceID}
	query := `SELECT ` + saleColumns + ` FROM sales WHERE workplace_id = $1`
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` AND (created_at, sale_id) < ($2, $3)`
		args = append(args, createdAt, id)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, sale_id DESC LIMIT $%d;`, len(args)+1)
	// One extra row tells us whether there is a next page.
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query sales for workplace "+workplaceID, err)
	}
	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sales for workplace "+workplaceID, err)
	}

	var next *string
	if len(modelSales) > limit {
		modelSales = modelSales[:limit]
		last := modelSales[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.SaleID)
		next = &token
	}

	ids := make([]string, len(modelSales))
	for i, m := range modelSales {
		ids[i] = m.SaleID
	}
	items, err := r.findItemsBySaleIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	sales := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		sales[i] = mapping.ToDomainSale(m, items[m.SaleID])
	}
	return sales, next, nil
}

func (r *PgxSaleRepository) findItemsBySaleIDs(ctx context.Context, saleIDs []string) (map[string][]models.SaleItem, error) {
	result := make(map[string][]models.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return result, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+saleItemColumns+`
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, position;`, saleIDs)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query sale items", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SaleItem])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sale items", err)
	}
	for _, it := range items {
		result[it.SaleID] = append(result[it.SaleID], it)
	}
	return result, nil
}
