package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentSettings controls how numbered documents are created.
type DocumentSettings struct {
	// Location decides the calendar day a document number belongs to. Nil means UTC.
	Location *time.Location
	// LockTimeout bounds each lock wait while creating or transitioning a document.
	LockTimeout time.Duration
}

func NewRepositoryProvider(dbPool *pgxpool.Pool, docs DocumentSettings) portsrepo.RepositoryProvider {
	sequencer := newPgxSequenceRepository(docs.Location)
	dealRepo := newPgxDealRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WorkplaceRepo:     newPgxWorkplaceRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool, sequencer, docs.LockTimeout),
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool, sequencer, docs.LockTimeout),
		DealRepo:          dealRepo,
		PipelineRepo:      dealRepo,
	}
}
