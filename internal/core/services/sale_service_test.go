package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/core/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSaleRepository
	mockAuth *MockWorkplaceAuthorizer
	service  portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSaleRepository)
	suite.mockAuth = new(MockWorkplaceAuthorizer)
	suite.service = services.NewSaleService(suite.mockRepo,
		services.WithWorkplaceAuthorizer(suite.mockAuth),
		services.WithClock(fixedClock))
}

func (suite *SaleServiceTestSuite) allowMember(ctx context.Context) {
	suite.mockAuth.On("AuthorizeUserAction", ctx, "user-1", "wp-1", domain.RoleMember).Return(nil).Once()
}

func validSaleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		PaymentMethod: domain.PaymentCard,
		DiscountTotal: decPtr("5"),
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p-1", Quantity: 3, UnitPrice: decPtr("10.00"), TaxRate: decPtr("7.5")},
			{ProductID: "p-2", Quantity: 1, UnitPrice: decPtr("19.99")},
		},
	}
}

func (suite *SaleServiceTestSuite) TestCreateSale_ComputesTotals() {
	ctx := context.Background()
	suite.allowMember(ctx)

	var captured domain.Sale
	suite.mockRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.Sale) }).
		Return(&domain.Sale{SaleID: "s-1", Number: "INV-20250314-0001"}, nil).Once()

	sale, err := suite.service.CreateSale(ctx, "wp-1", validSaleRequest(), "user-1")

	suite.Require().NoError(err)
	suite.Equal("INV-20250314-0001", sale.Number)
	suite.True(dec("49.99").Equal(captured.Subtotal), captured.Subtotal.String())
	suite.True(dec("2.25").Equal(captured.TaxTotal), captured.TaxTotal.String())
	suite.True(dec("5").Equal(captured.DiscountTotal))
	suite.True(dec("47.24").Equal(captured.Total), captured.Total.String())
	suite.Equal(domain.SaleCompleted, captured.Status)
	suite.Equal(fixedNow, captured.CreatedAt)
	suite.Require().Len(captured.Items, 2)
	suite.True(dec("30").Equal(captured.Items[0].LineTotal))
	suite.True(captured.Items[1].TaxRate.IsZero())
	suite.Equal(captured.SaleID, captured.Items[0].SaleID)
	suite.NotEqual(captured.Items[0].SaleItemID, captured.Items[1].SaleItemID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_ValidationFailures() {
	ctx := context.Background()
	tests := []struct {
		name   string
		mutate func(*dto.CreateSaleRequest)
	}{
		{"unknown payment method", func(r *dto.CreateSaleRequest) { r.PaymentMethod = "BARTER" }},
		{"no items", func(r *dto.CreateSaleRequest) { r.Items = nil }},
		{"zero quantity", func(r *dto.CreateSaleRequest) { r.Items[0].Quantity = 0 }},
		{"negative price", func(r *dto.CreateSaleRequest) { r.Items[0].UnitPrice = decPtr("-1") }},
		{"tax above 100", func(r *dto.CreateSaleRequest) { r.Items[0].TaxRate = decPtr("100.01") }},
		{"negative discount", func(r *dto.CreateSaleRequest) { r.DiscountTotal = decPtr("-0.01") }},
		{"discount exceeds total", func(r *dto.CreateSaleRequest) { r.DiscountTotal = decPtr("1000") }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.allowMember(ctx)
			req := validSaleRequest()
			tt.mutate(&req)

			sale, err := suite.service.CreateSale(ctx, "wp-1", req, "user-1")

			suite.Nil(sale)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.mockRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything)
		})
	}
}

func (suite *SaleServiceTestSuite) TestCreateSale_Forbidden() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeUserAction", ctx, "user-1", "wp-1", domain.RoleMember).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateSale(ctx, "wp-1", validSaleRequest(), "user-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_ContentionPropagates() {
	ctx := context.Background()
	suite.allowMember(ctx)
	suite.mockRepo.On("CreateSale", ctx, mock.Anything).
		Return(nil, apperrors.NewContentionError("document sequence busy", nil)).Once()

	_, err := suite.service.CreateSale(ctx, "wp-1", validSaleRequest(), "user-1")

	suite.ErrorIs(err, apperrors.ErrContention)
}

func (suite *SaleServiceTestSuite) TestListSales_ReadOnlyAllowed() {
	ctx := context.Background()
	token := "next"
	suite.mockAuth.On("AuthorizeUserAction", ctx, "user-1", "wp-1", domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListSales", ctx, "wp-1", 10, (*string)(nil)).
		Return([]domain.Sale{{SaleID: "s-1"}}, &token, nil).Once()

	sales, next, err := suite.service.ListSales(ctx, "wp-1", 10, nil, "user-1")

	suite.Require().NoError(err)
	suite.Len(sales, 1)
	suite.Equal("next", *next)
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_NotFound() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeUserAction", ctx, "user-1", "wp-1", domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("FindSaleByID", ctx, "wp-1", "missing").
		Return(nil, apperrors.NewNotFoundError("sale not found")).Once()

	_, err := suite.service.GetSaleByID(ctx, "wp-1", "missing", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func TestSaleService_DeniesWithoutAuthorizer(t *testing.T) {
	repo := new(MockSaleRepository)
	svc := services.NewSaleService(repo)

	_, err := svc.CreateSale(context.Background(), "wp-1", validSaleRequest(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
}
