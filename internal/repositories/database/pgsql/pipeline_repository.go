package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/SscSPs/crm_pos_app/internal/models"
	"github.com/SscSPs/crm_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Deals in the pipeline are those not in a terminal stage and in one of the pipeline stages.
// With today's stage set the second condition implies the first; both are kept so a stage added
// later shows up in neither list nor totals until it is placed in the pipeline.
const pipelineFilter = `d.workplace_id = $1 AND d.stage <> ALL($2) AND d.stage = ANY($3)`

// GetPipelineData reads per-stage totals and the open deals from a single read-only snapshot.
func (r *PgxDealRepository) GetPipelineData(ctx context.Context, workplaceID string) (map[domain.DealStage]decimal.Decimal, []domain.Deal, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin pipeline snapshot", err)
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	terminal := stageStrings(domain.TerminalDealStages)
	pipeline := stageStrings(domain.PipelineStages())

	// 1. Totals
	totalRows, err := tx.Query(ctx, `
		SELECT d.stage, SUM(COALESCE(d.value, 0))
		FROM deals d
		WHERE `+pipelineFilter+`
		GROUP BY d.stage;`, workplaceID, terminal, pipeline)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query pipeline totals for workplace "+workplaceID, err)
	}
	totals := make(map[domain.DealStage]decimal.Decimal)
	var (
		stage string
		total decimal.Decimal
	)
	_, err = pgx.ForEachRow(totalRows, []any{&stage, &total}, func() error {
		totals[domain.DealStage(stage)] = total
		return nil
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan pipeline totals for workplace "+workplaceID, err)
	}

	// 2. Deals
	dealRows, err := tx.Query(ctx, dealSelectQuery+`
		WHERE `+pipelineFilter+`
		ORDER BY d.created_at, d.deal_id;`, workplaceID, terminal, pipeline)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query pipeline deals for workplace "+workplaceID, err)
	}
	modelDeals, err := pgx.CollectRows(dealRows, pgx.RowToStructByName[models.Deal])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan pipeline deals for workplace "+workplaceID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to end pipeline snapshot", err)
	}

	deals := make([]domain.Deal, len(modelDeals))
	for i, m := range modelDeals {
		deals[i] = mapping.ToDomainDeal(m)
	}
	return totals, deals, nil
}

func stageStrings(stages []domain.DealStage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = string(s)
	}
	return out
}
