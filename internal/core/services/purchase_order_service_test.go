package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/core/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseOrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPurchaseOrderRepository
	mockAuth *MockWorkplaceAuthorizer
	service  portssvc.PurchaseOrderSvcFacade
}

func (suite *PurchaseOrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseOrderRepository)
	suite.mockAuth = new(MockWorkplaceAuthorizer)
	suite.service = services.NewPurchaseOrderService(suite.mockRepo,
		services.WithWorkplaceAuthorizer(suite.mockAuth),
		services.WithClock(fixedClock))
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, "user-1", "wp-1", mock.Anything).Return(nil).Maybe()
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_ComputesTotal() {
	ctx := context.Background()
	req := dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Items: []dto.CreatePurchaseOrderItemRequest{
			{ProductID: "p-1", Quantity: 12, UnitCost: decPtr("2.50")},
			{ProductID: "p-2", Quantity: 1, UnitCost: decPtr("100")},
		},
	}

	var captured domain.PurchaseOrder
	suite.mockRepo.On("CreatePurchaseOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.PurchaseOrder) }).
		Return(&domain.PurchaseOrder{PurchaseOrderID: "po-1", Number: "PO-20250314-0001"}, nil).Once()

	po, err := suite.service.CreatePurchaseOrder(ctx, "wp-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("PO-20250314-0001", po.Number)
	suite.True(dec("130").Equal(captured.Total), captured.Total.String())
	suite.Equal(domain.PurchaseOrderOrdered, captured.Status)
	suite.Equal("sup-1", captured.SupplierID)
	suite.Require().Len(captured.Items, 2)
	suite.True(dec("30").Equal(captured.Items[0].LineTotal))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_RejectsNegativeCost() {
	req := dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Items:      []dto.CreatePurchaseOrderItemRequest{{ProductID: "p-1", Quantity: 1, UnitCost: decPtr("-3")}},
	}

	_, err := suite.service.CreatePurchaseOrder(context.Background(), "wp-1", req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreatePurchaseOrder", mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestReceivePurchaseOrder() {
	ctx := context.Background()
	received := &domain.PurchaseOrder{PurchaseOrderID: "po-1", Status: domain.PurchaseOrderReceived}
	suite.mockRepo.On("ReceivePurchaseOrder", ctx, "wp-1", "po-1", "user-1", fixedNow).Return(nil).Once()
	suite.mockRepo.On("FindPurchaseOrderByID", ctx, "wp-1", "po-1").Return(received, nil).Once()

	po, err := suite.service.ReceivePurchaseOrder(ctx, "wp-1", "po-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PurchaseOrderReceived, po.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestCancelPurchaseOrder_AlreadyReceived() {
	ctx := context.Background()
	suite.mockRepo.On("CancelPurchaseOrder", ctx, "wp-1", "po-1", "user-1", fixedNow).
		Return(apperrors.NewValidationError("purchase order po-1 is RECEIVED, expected ORDERED")).Once()

	po, err := suite.service.CancelPurchaseOrder(ctx, "wp-1", "po-1", "user-1")

	suite.Nil(po)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPurchaseOrderByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceTestSuite))
}
