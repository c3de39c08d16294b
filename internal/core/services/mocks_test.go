package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Workplace repository ---

type MockWorkplaceRepository struct {
	mock.Mock
}

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.UserWorkplace) error {
	args := m.Called(ctx, workplace, creator)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

// --- Authorization ---

type MockWorkplaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

type MockWorkplaceReader struct {
	mock.Mock
}

func (m *MockWorkplaceReader) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceReader) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

// --- Sale repository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, workplaceID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, workplaceID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return sales, next, args.Error(2)
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

// --- Purchase order repository ---

type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, workplaceID, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken)
	var pos []domain.PurchaseOrder
	if args.Get(0) != nil {
		pos = args.Get(0).([]domain.PurchaseOrder)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return pos, next, args.Error(2)
}

func (m *MockPurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, po)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error {
	args := m.Called(ctx, workplaceID, purchaseOrderID, userID, at)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string, at time.Time) error {
	args := m.Called(ctx, workplaceID, purchaseOrderID, userID, at)
	return args.Error(0)
}

// --- Deal and pipeline repositories ---

type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) FindDealByID(ctx context.Context, workplaceID, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, workplaceID, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

type MockPipelineRepository struct {
	mock.Mock
}

func (m *MockPipelineRepository) GetPipelineData(ctx context.Context, workplaceID string) (map[domain.DealStage]decimal.Decimal, []domain.Deal, error) {
	args := m.Called(ctx, workplaceID)
	var totals map[domain.DealStage]decimal.Decimal
	if args.Get(0) != nil {
		totals = args.Get(0).(map[domain.DealStage]decimal.Decimal)
	}
	var deals []domain.Deal
	if args.Get(1) != nil {
		deals = args.Get(1).([]domain.Deal)
	}
	return totals, deals, args.Error(2)
}

// --- helpers ---

var fixedNow = time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }
