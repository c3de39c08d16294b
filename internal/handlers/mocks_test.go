package handlers_test

import (
	"context"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

func (m *MockWorkplaceService) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) CreateWorkplace(ctx context.Context, name, description, currencyCode, creatorUserID string) (*domain.Workplace, error) {
	args := m.Called(ctx, name, description, currencyCode, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) AddUserToWorkplace(ctx context.Context, addingUserID, targetUserID, workplaceID string, role domain.UserWorkplaceRole) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, addingUserID, targetUserID, workplaceID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}
func (m *MockWorkplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSaleByID(ctx context.Context, workplaceID, saleID, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, workplaceID, saleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken, userID)
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
func (m *MockSaleService) CreateSale(ctx context.Context, workplaceID string, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock PurchaseOrderService ---
type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, workplaceID, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) ListPurchaseOrders(ctx context.Context, workplaceID string, limit int, nextToken *string, userID string) ([]domain.PurchaseOrder, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken, userID)
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
func (m *MockPurchaseOrderService) CreatePurchaseOrder(ctx context.Context, workplaceID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, workplaceID, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) CancelPurchaseOrder(ctx context.Context, workplaceID, purchaseOrderID, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, workplaceID, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

var _ portssvc.PurchaseOrderSvcFacade = (*MockPurchaseOrderService)(nil)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) CreateDeal(ctx context.Context, workplaceID string, req dto.CreateDealRequest, userID string) (*domain.Deal, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}
func (m *MockDealService) GetDealByID(ctx context.Context, workplaceID, dealID, userID string) (*domain.Deal, error) {
	args := m.Called(ctx, workplaceID, dealID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Mock PipelineService ---
type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) GetPipeline(ctx context.Context, workplaceID, userID string) (*domain.PipelineView, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineView), args.Error(1)
}

var _ portssvc.PipelineSvc = (*MockPipelineService)(nil)
