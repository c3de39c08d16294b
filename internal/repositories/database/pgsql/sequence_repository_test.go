package pgsql

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crm_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/crm_pos_app/internal/utils/docnumber"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DocumentNumberingTestSuite struct {
	suite.Suite
	fx        fixtures
	sequencer *PgxSequenceRepository
	sales     portsrepo.SaleRepositoryWithTx
	pos       portsrepo.PurchaseOrderRepositoryWithTx
}

func (s *DocumentNumberingTestSuite) SetupTest() {
	pool := newTestPool(s.T())
	s.fx = fixtures{t: s.T(), pool: pool}
	s.sequencer = newPgxSequenceRepository(time.UTC)
	s.sales = newPgxSaleRepository(pool, s.sequencer, 10*time.Second)
	s.pos = newPgxPurchaseOrderRepository(pool, s.sequencer, 10*time.Second)
}

func newTestSale(workplaceID, productID string, qty int64, at time.Time) domain.Sale {
	price := dec("10.00")
	lineTotal := price.Mul(decimalFromInt(qty))
	return domain.Sale{
		SaleID:        uuid.NewString(),
		WorkplaceID:   workplaceID,
		Status:        domain.SaleCompleted,
		PaymentMethod: domain.PaymentCash,
		Items: []domain.SaleItem{{
			SaleItemID: uuid.NewString(),
			ProductID:  productID,
			Quantity:   qty,
			UnitPrice:  price,
			TaxRate:    dec("0"),
			LineTotal:  lineTotal,
		}},
		Subtotal:      lineTotal,
		TaxTotal:      dec("0"),
		DiscountTotal: dec("0"),
		Total:         lineTotal,
		AuditFields: domain.AuditFields{
			CreatedAt: at, CreatedBy: "user-1", LastUpdatedAt: at, LastUpdatedBy: "user-1",
		},
	}
}

func newTestPurchaseOrder(workplaceID, supplierID, productID string, qty int64, at time.Time) domain.PurchaseOrder {
	cost := dec("4.00")
	lineTotal := cost.Mul(decimalFromInt(qty))
	return domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		WorkplaceID:     workplaceID,
		SupplierID:      supplierID,
		Status:          domain.PurchaseOrderOrdered,
		Items: []domain.PurchaseOrderItem{{
			PurchaseOrderItemID: uuid.NewString(),
			ProductID:           productID,
			Quantity:            qty,
			UnitCost:            cost,
			LineTotal:           lineTotal,
		}},
		Total: lineTotal,
		AuditFields: domain.AuditFields{
			CreatedAt: at, CreatedBy: "user-1", LastUpdatedAt: at, LastUpdatedBy: "user-1",
		},
	}
}

func (s *DocumentNumberingTestSuite) TestSequentialNumbersStartAtOne() {
	ctx := context.Background()
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 100)
	at := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	for i, want := range []string{"INV-20250115-0001", "INV-20250115-0002", "INV-20250115-0003"} {
		sale, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, at.Add(time.Duration(i)*time.Second)))
		s.Require().NoError(err)
		s.Equal(want, sale.Number)
	}

	stored, err := s.sales.FindSaleByID(ctx, wp, mustListFirst(s.T(), s.sales, wp).SaleID)
	s.Require().NoError(err)
	s.Equal("INV-20250115-0003", stored.Number)
	s.Len(stored.Items, 1)
	s.Equal(int64(97), s.fx.stock(product))
}

func (s *DocumentNumberingTestSuite) TestConcurrentCreatesGetDistinctGaplessNumbers() {
	ctx := context.Background()
	wp := s.fx.workplace("USD")
	at := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	const workers = 20

	// One product per worker so only the counter row is shared between them.
	products := make([]string, workers)
	for i := range products {
		products[i] = s.fx.product(wp, 10)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
		errs    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(product string) {
			defer wg.Done()
			sale, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, at))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, sale.Number)
		}(products[i])
	}
	wg.Wait()

	s.Require().Empty(errs)
	s.Require().Len(numbers, workers)
	seqs := make([]int, 0, workers)
	for _, n := range numbers {
		parsed, err := docnumber.Parse(n)
		s.Require().NoError(err)
		s.Equal("INV", parsed.Prefix)
		seqs = append(seqs, int(parsed.Sequence))
	}
	sort.Ints(seqs)
	for i, seq := range seqs {
		s.Equal(i+1, seq)
	}
	for _, product := range products {
		s.Equal(int64(9), s.fx.stock(product))
	}
}

// allocateConcurrently starts a transaction that asks for the next sale number while another
// transaction may hold the counter row. The result arrives on the returned channel; the caller
// must commit or roll back the returned transaction after reading it.
func (s *DocumentNumberingTestSuite) allocateConcurrently(ctx context.Context, workplaceID string, at time.Time) (pgx.Tx, <-chan allocation) {
	tx, err := s.fx.pool.Begin(ctx)
	s.Require().NoError(err)
	result := make(chan allocation, 1)
	go func() {
		number, err := s.sequencer.NextDocumentNumber(ctx, tx, workplaceID, domain.DocumentKindSale, at)
		result <- allocation{number: number, err: err}
	}()
	return tx, result
}

type allocation struct {
	number string
	err    error
}

// waitForBlockedBackend waits until some backend is queued on a document_sequences row lock.
func (s *DocumentNumberingTestSuite) waitForBlockedBackend(ctx context.Context) {
	s.Require().Eventually(func() bool {
		var waiting int
		err := s.fx.pool.QueryRow(ctx, `
			SELECT count(*) FROM pg_stat_activity
			WHERE wait_event_type = 'Lock' AND query LIKE '%document_sequences%'`).Scan(&waiting)
		return err == nil && waiting > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func (s *DocumentNumberingTestSuite) TestSecondAllocationWaitsForCommit() {
	ctx := context.Background()
	at := time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")

	first, err := s.fx.pool.Begin(ctx)
	s.Require().NoError(err)
	defer first.Rollback(ctx) //nolint:errcheck
	number, err := s.sequencer.NextDocumentNumber(ctx, first, wp, domain.DocumentKindSale, at)
	s.Require().NoError(err)
	s.Equal("INV-20250202-0001", number)

	second, result := s.allocateConcurrently(ctx, wp, at)
	defer second.Rollback(ctx) //nolint:errcheck

	s.waitForBlockedBackend(ctx)
	s.Empty(result, "second allocation must wait while the first transaction is open")

	s.Require().NoError(first.Commit(ctx))
	got := <-result
	s.Require().NoError(got.err)
	s.Equal("INV-20250202-0002", got.number)
	s.Require().NoError(second.Commit(ctx))
}

func (s *DocumentNumberingTestSuite) TestSecondAllocationReusesRolledBackValue() {
	ctx := context.Background()
	at := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")

	first, err := s.fx.pool.Begin(ctx)
	s.Require().NoError(err)
	defer first.Rollback(ctx) //nolint:errcheck
	number, err := s.sequencer.NextDocumentNumber(ctx, first, wp, domain.DocumentKindSale, at)
	s.Require().NoError(err)
	s.Equal("INV-20250203-0001", number)

	second, result := s.allocateConcurrently(ctx, wp, at)
	defer second.Rollback(ctx) //nolint:errcheck

	s.waitForBlockedBackend(ctx)
	s.Empty(result, "second allocation must wait while the first transaction is open")

	s.Require().NoError(first.Rollback(ctx))
	got := <-result
	s.Require().NoError(got.err)
	s.Equal("INV-20250203-0001", got.number)
	s.Require().NoError(second.Commit(ctx))
}

func (s *DocumentNumberingTestSuite) TestSequencesAreIndependentPerWorkplace() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	wpA, wpB := s.fx.workplace("USD"), s.fx.workplace("EUR")
	productA, productB := s.fx.product(wpA, 10), s.fx.product(wpB, 10)

	for i := 0; i < 3; i++ {
		_, err := s.sales.CreateSale(ctx, newTestSale(wpA, productA, 1, at))
		s.Require().NoError(err)
	}
	sale, err := s.sales.CreateSale(ctx, newTestSale(wpB, productB, 1, at))
	s.Require().NoError(err)
	s.Equal("INV-20250310-0001", sale.Number)
}

func (s *DocumentNumberingTestSuite) TestSequencesAreIndependentPerKind() {
	ctx := context.Background()
	at := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)
	supplier := s.fx.supplier(wp)

	for i := 0; i < 2; i++ {
		_, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, at))
		s.Require().NoError(err)
	}
	po, err := s.pos.CreatePurchaseOrder(ctx, newTestPurchaseOrder(wp, supplier, product, 5, at))
	s.Require().NoError(err)
	s.Equal("PO-20250311-0001", po.Number)
}

func (s *DocumentNumberingTestSuite) TestDayRolloverRestartsAtOne() {
	ctx := context.Background()
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)

	before := time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC)
	after := time.Date(2025, 1, 16, 0, 1, 0, 0, time.UTC)

	first, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, before))
	s.Require().NoError(err)
	second, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, after))
	s.Require().NoError(err)

	s.Equal("INV-20250115-0001", first.Number)
	s.Equal("INV-20250116-0001", second.Number)
}

func (s *DocumentNumberingTestSuite) TestDocumentDayFollowsConfiguredZone() {
	ctx := context.Background()
	ny, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)
	sales := newPgxSaleRepository(s.fx.pool, newPgxSequenceRepository(ny), 10*time.Second)
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)

	// 03:00 UTC on the 15th is still the evening of the 14th in New York.
	sale, err := sales.CreateSale(ctx, newTestSale(wp, product, 1, time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	s.Equal("INV-20250114-0001", sale.Number)
}

func (s *DocumentNumberingTestSuite) TestFailedCreationConsumesNoNumber() {
	ctx := context.Background()
	at := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 2)

	_, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 5, at))
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(int64(2), s.fx.stock(product))

	sale, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 2, at))
	s.Require().NoError(err)
	s.Equal("INV-20250401-0001", sale.Number)
	s.Equal(int64(0), s.fx.stock(product))
}

func (s *DocumentNumberingTestSuite) TestProductFromAnotherWorkplaceIsRejected() {
	ctx := context.Background()
	wpA, wpB := s.fx.workplace("USD"), s.fx.workplace("USD")
	foreign := s.fx.product(wpB, 10)

	_, err := s.sales.CreateSale(ctx, newTestSale(wpA, foreign, 1, time.Now().UTC()))
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(int64(10), s.fx.stock(foreign))
}

func (s *DocumentNumberingTestSuite) TestLockTimeoutSurfacesAsContention() {
	ctx := context.Background()
	at := time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)

	// Hold the day's counter row in an open transaction.
	holder, err := s.fx.pool.Begin(ctx)
	s.Require().NoError(err)
	defer holder.Rollback(ctx) //nolint:errcheck
	held, err := s.sequencer.NextDocumentNumber(ctx, holder, wp, domain.DocumentKindSale, at)
	s.Require().NoError(err)
	s.Equal("INV-20250505-0001", held)

	impatient := newPgxSaleRepository(s.fx.pool, s.sequencer, 200*time.Millisecond)
	_, err = impatient.CreateSale(ctx, newTestSale(wp, product, 1, at))
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrContention)
	s.Equal(int64(10), s.fx.stock(product))

	// Releasing the holder returns its value.
	s.Require().NoError(holder.Rollback(ctx))
	sale, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, at))
	s.Require().NoError(err)
	s.Equal("INV-20250505-0001", sale.Number)
}

func (s *DocumentNumberingTestSuite) TestDailyLimitIsAnError() {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)

	_, err := s.fx.pool.Exec(ctx, `
		INSERT INTO document_sequences (workplace_id, document_kind, sequence_date, last_value)
		VALUES ($1, 'sale', '2025-06-01', $2)`, wp, docnumber.MaxSequence)
	s.Require().NoError(err)

	_, err = s.sales.CreateSale(ctx, newTestSale(wp, product, 1, at))
	s.Require().Error(err)
	s.ErrorIs(err, docnumber.ErrSequenceOutOfRange)
	s.Equal(int64(10), s.fx.stock(product))
}

func (s *DocumentNumberingTestSuite) TestListSalesPaginates() {
	ctx := context.Background()
	wp := s.fx.workplace("USD")
	product := s.fx.product(wp, 10)
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.sales.CreateSale(ctx, newTestSale(wp, product, 1, base.Add(time.Duration(i)*time.Minute)))
		s.Require().NoError(err)
	}

	page1, next, err := s.sales.ListSales(ctx, wp, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page1, 2)
	s.Require().NotNil(next)
	s.Equal("INV-20250701-0003", page1[0].Number)
	s.Equal("INV-20250701-0002", page1[1].Number)

	page2, next, err := s.sales.ListSales(ctx, wp, 2, next)
	s.Require().NoError(err)
	s.Require().Len(page2, 1)
	s.Nil(next)
	s.Equal("INV-20250701-0001", page2[0].Number)
	s.Len(page2[0].Items, 1)
}

func TestDocumentNumberingTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentNumberingTestSuite))
}

func mustListFirst(t *testing.T, repo portsrepo.SaleReader, workplaceID string) domain.Sale {
	t.Helper()
	sales, _, err := repo.ListSales(context.Background(), workplaceID, 1, nil)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	return sales[0]
}

func TestNewPgxSequenceRepository_DefaultsToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, newPgxSequenceRepository(nil).location)
}
