package dto

import (
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Sale DTOs ---

// CreateSaleItemRequest is one line of a new sale.
type CreateSaleItemRequest struct {
	ProductID   string           `json:"productID" binding:"required"`
	Description string           `json:"description"` // defaults to the product name
	Quantity    int64            `json:"quantity" binding:"required,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     *decimal.Decimal `json:"taxRate"` // percent
}

// CreateSaleRequest defines data for recording a sale.
type CreateSaleRequest struct {
	ContactID     *string                 `json:"contactID"`
	PaymentMethod domain.PaymentMethod    `json:"paymentMethod" binding:"required,paymentmethod"`
	DiscountTotal *decimal.Decimal        `json:"discountTotal"`
	Notes         string                  `json:"notes"`
	Items         []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse defines data returned for a sale line.
type SaleItemResponse struct {
	SaleItemID  string          `json:"saleItemID"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines data returned for a sale.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	WorkplaceID   string             `json:"workplaceID"`
	Number        string             `json:"number"`
	ContactID     *string            `json:"contactID,omitempty"`
	Status        domain.SaleStatus  `json:"status"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxTotal      decimal.Decimal    `json:"taxTotal"`
	DiscountTotal decimal.Decimal    `json:"discountTotal"`
	Total         decimal.Decimal    `json:"total"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ToSaleResponse converts domain.Sale to DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			SaleItemID:  it.SaleItemID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			LineTotal:   it.LineTotal,
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		WorkplaceID:   s.WorkplaceID,
		Number:        s.Number,
		ContactID:     s.ContactID,
		Status:        s.Status,
		PaymentMethod: string(s.PaymentMethod),
		Items:         items,
		Subtotal:      s.Subtotal,
		TaxTotal:      s.TaxTotal,
		DiscountTotal: s.DiscountTotal,
		Total:         s.Total,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
	}
}

// ListSalesResponse wraps a page of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a page of domain.Sale to DTO.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) ListSalesResponse {
	list := make([]SaleResponse, len(sales))
	for i := range sales {
		list[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: list, NextToken: nextToken}
}
