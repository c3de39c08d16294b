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

type PgxPurchaseOrderRepository struct {
	BaseRepository
	sequencer   portsrepo.DocumentSequencer
	lockTimeout time.Duration
}

// newPgxPurchaseOrderRepository creates a new repository for purchase orders. Numbers come from sequencer.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool, sequencer portsrepo.DocumentSequencer, lockTimeout time.Duration) portsrepo.PurchaseOrderRepositoryWithTx {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequencer:      sequencer,
		lockTimeout:    lockTimeout,
	}
}

// Ensure PgxPurchaseOrderRepository implements portsrepo.PurchaseOrderRepositoryWithTx
var _ portsrepo.PurchaseOrderRepositoryWithTx = (*PgxPurchaseOrderRepository)(nil)

const purchaseOrderColumns = `
	purchase_order_id, workplace_id, number, supplier_id, status, expected_date, received_at,
	total, notes, created_at, created_by, last_updated_at, last_updated_by
`

const purchaseOrderItemColumns = `
	purchase_order_item_id, purchase_order_id, product_id, quantity, unit_cost, line_total
`

// CreatePurchaseOrder checks that supplier and products belong to the workplace, takes the next
// PO number and inserts the order with its items in one transaction.
func (r *PgxPurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	if len(po.Items) == 0 {
		return nil, apperrors.NewValidationError("purchase order must have at least one item")
	}

	tx, err := r.BeginWithLockTimeout(ctx, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	ok, err := belongsToWorkplace(ctx, tx, "suppliers", "supplier_id", po.SupplierID, po.WorkplaceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewValidationError("supplier " + po.SupplierID + " not found in workplace")
	}

	productIDs := make([]string, len(po.Items))
	for i, item := range po.Items {
		productIDs[i] = item.ProductID
	}
	// Share locks would do here, but taking the same row locks as sales keeps lock ordering uniform.
	products, err := lockProducts(ctx, tx, po.WorkplaceID, productIDs)
	if err != nil {
		return nil, err
	}
	if err := requireProducts(products, productIDs); err != nil {
		return nil, err
	}

	number, err := r.sequencer.NextDocumentNumber(ctx, tx, po.WorkplaceID, domain.DocumentKindPurchaseOrder, po.CreatedAt)
	if err != nil {
		return nil, err
	}
	po.Number = number

	m := mapping.ToModelPurchaseOrder(po)
	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_orders (`+purchaseOrderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.PurchaseOrderID, m.WorkplaceID, m.Number, m.SupplierID, m.Status, m.ExpectedDate, m.ReceivedAt,
		m.Total, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to insert purchase order "+po.PurchaseOrderID)
	}

	po.Items = slices.Clone(po.Items)
	batch := &pgx.Batch{}
	for i := range po.Items {
		po.Items[i].PurchaseOrderID = po.PurchaseOrderID
		mi := mapping.ToModelPurchaseOrderItem(po.Items[i])
		batch.Queue(`
			INSERT INTO purchase_order_items (`+purchaseOrderItemColumns+`, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			mi.PurchaseOrderItemID, mi.PurchaseOrderID, mi.ProductID, mi.Quantity, mi.UnitCost, mi.LineTotal, i,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, mapPgError(err, "failed to insert items for purchase order "+po.PurchaseOrderID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &po, nil
}

// lockOrderedPurchaseOrder locks the purchase order row and requires it to still be ORDERED.
func lockOrderedPurchaseOrder(ctx context.Context, tx pgx.Tx, workplaceID, purchaseOrderID string) error {
	var status string
	err := tx.QueryRow(ctx, `
		SELECT status FROM purchase_orders
		WHERE purchase_order_id = $1 AND workplace_id = $2
		FOR UPDATE;`, purchaseOrderID, workplaceID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("purchase order " + purchaseOrderID + " not found")
		}
		return mapPgError(err, "failed to lock purchase order "+purchaseOrderID)
	}
	if domain.PurchaseOrderStatus(status) != domain.PurchaseOrderOrdered {
		return apperrors.NewValidationError(fmt.Sprintf("purchase order %s is %s, expected %s", purchaseOrderID, status, domain.PurchaseOrderOrdered))
	}
	return nil
}

func purchaseOrderProductIDs(ctx context.Context, tx pgx.Tx, purchaseOrderID string) ([]string, error) {
	rows, err := tx.Query(ctx, `
		SELECT DISTINCT product_id FROM purchase_order_items WHERE purchase_order_id = $1;`, purchaseOrderID)
	if err != nil {
		return nil, mapPgError(err, "failed to load items for purchase order "+purchaseOrderID)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapPgError(err, "failed to load items for purchase order "+purchaseOrderID)
	}
	return ids, nil
}

// ReceivePurchaseOrder marks the order RECEIVED and adds its item quantities to product stock.
func (r *PgxPurchaseOrderRepository) ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error {
	tx, err := r.BeginWithLockTimeout(ctx, r.lockTimeout)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := lockOrderedPurchaseOrder(ctx, tx, workplaceID, purchaseOrderID); err != nil {
		return err
	}

	productIDs, err := purchaseOrderProductIDs(ctx, tx, purchaseOrderID)
	if err != nil {
		return err
	}
	// Lock in product_id order before the join update, which would otherwise lock in join order.
	if _, err := lockProducts(ctx, tx, workplaceID, productIDs); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE products p
		SET stock_quantity = p.stock_quantity + i.quantity
		FROM (
			SELECT product_id, SUM(quantity) AS quantity
			FROM purchase_order_items
			WHERE purchase_order_id = $1
			GROUP BY product_id
		) i
		WHERE p.product_id = i.product_id;`, purchaseOrderID)
	if err != nil {
		return mapPgError(err, "failed to add received stock for purchase order "+purchaseOrderID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $1, received_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE purchase_order_id = $4;`, domain.PurchaseOrderReceived, at, userID, purchaseOrderID)
	if err != nil {
		return mapPgError(err, "failed to receive purchase order "+purchaseOrderID)
	}

	return r.Commit(ctx, tx)
}

// CancelPurchaseOrder marks an ORDERED purchase order CANCELLED. Its number stays taken.
func (r *PgxPurchaseOrderRepository) CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error {
	tx, err := r.BeginWithLockTimeout(ctx, r.lockTimeout)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := lockOrderedPurchaseOrder(ctx, tx, workplaceID, purchaseOrderID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE purchase_order_id = $4;`, domain.PurchaseOrderCancelled, at, userID, purchaseOrderID)
	if err != nil {
		return mapPgError(err, "failed to cancel purchase order "+purchaseOrderID)
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseOrderByID retrieves a purchase order and its items.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+purchaseOrderColumns+`
		FROM purchase_orders
		WHERE purchase_order_id = $1 AND workplace_id = $2;`, purchaseOrderID, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query purchase order "+purchaseOrderID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PurchaseOrder])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase order " + purchaseOrderID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan purchase order "+purchaseOrderID, err)
	}

	items, err := r.findItemsByPurchaseOrderIDs(ctx, []string{purchaseOrderID})
	if err != nil {
		return nil, err
	}
	po := mapping.ToDomainPurchaseOrder(m, items[purchaseOrderID])
	return &po, nil
}

// ListPurchaseOrders lists purchase orders newest first using token-based pagination.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	args := []any{workplaceID}
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE workplace_id = $1`
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` AND (created_at, purchase_order_id) < ($2, $3)`
		args = append(args, createdAt, id)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, purchase_order_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query purchase orders for workplace "+workplaceID, err)
	}
	modelPOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseOrder])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan purchase orders for workplace "+workplaceID, err)
	}

	var next *string
	if len(modelPOs) > limit {
		modelPOs = modelPOs[:limit]
		last := modelPOs[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PurchaseOrderID)
		next = &token
	}

	ids := make([]string, len(modelPOs))
	for i, m := range modelPOs {
		ids[i] = m.PurchaseOrderID
	}
	items, err := r.findItemsByPurchaseOrderIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	pos := make([]domain.PurchaseOrder, len(modelPOs))
	for i, m := range modelPOs {
		pos[i] = mapping.ToDomainPurchaseOrder(m, items[m.PurchaseOrderID])
	}
	return pos, next, nil
}

func (r *PgxPurchaseOrderRepository) findItemsByPurchaseOrderIDs(ctx context.Context, ids []string) (map[string][]models.PurchaseOrderItem, error) {
	result := make(map[string][]models.PurchaseOrderItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+purchaseOrderItemColumns+`
		FROM purchase_order_items
		WHERE purchase_order_id = ANY($1)
		ORDER BY purchase_order_id, position;`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query purchase order items", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseOrderItem])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan purchase order items", err)
	}
	for _, it := range items {
		result[it.PurchaseOrderID] = append(result[it.PurchaseOrderID], it)
	}
	return result, nil
}
