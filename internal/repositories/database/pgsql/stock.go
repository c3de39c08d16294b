package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
)

// lockedProduct is the part of a products row document creation needs while holding its lock.
type lockedProduct struct {
	ProductID     string
	Name          string
	StockQuantity int64
}

// lockProducts locks the workplace's products among productIDs for the rest of the transaction.
// Rows are locked in product_id order so two documents touching the same products cannot deadlock.
// Products missing from the workplace are absent from the result.
func lockProducts(ctx context.Context, tx querier, workplaceID string, productIDs []string) (map[string]lockedProduct, error) {
	ids := slices.Clone(productIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	rows, err := tx.Query(ctx, `
		SELECT product_id, name, stock_quantity
		FROM products
		WHERE workplace_id = $1 AND product_id = ANY($2)
		ORDER BY product_id
		FOR UPDATE;`, workplaceID, ids)
	if err != nil {
		return nil, mapPgError(err, "failed to lock products")
	}
	defer rows.Close()

	products := make(map[string]lockedProduct, len(ids))
	for rows.Next() {
		var p lockedProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.StockQuantity); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan product row", err)
		}
		products[p.ProductID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to lock products")
	}
	return products, nil
}

// requireProducts reports the first product ID that lockProducts did not return.
func requireProducts(products map[string]lockedProduct, productIDs []string) error {
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			return apperrors.NewValidationError(fmt.Sprintf("product %s not found in workplace", id))
		}
	}
	return nil
}

// belongsToWorkplace checks that the row with the given ID exists in table and is owned by the workplace.
// table and idColumn are compile-time constants of this package.
func belongsToWorkplace(ctx context.Context, q querier, table, idColumn, id, workplaceID string) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND workplace_id = $2)`, table, idColumn)
	if err := q.QueryRow(ctx, query, id, workplaceID).Scan(&exists); err != nil {
		return false, mapPgError(err, "failed to check "+table+" ownership")
	}
	return exists, nil
}
