package domain

import "github.com/shopspring/decimal"

// SaleStatus indicates the state of a sale.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "COMPLETED"
	SaleVoided    SaleStatus = "VOIDED"
)

// PaymentMethod records how a sale was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentOther    PaymentMethod = "OTHER"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return true
	}
	return false
}

// Sale is a point-of-sale invoice. Number is assigned once, at creation, and never changes.
type Sale struct {
	SaleID        string          `json:"saleID"`
	WorkplaceID   string          `json:"workplaceID"`
	Number        string          `json:"number"` // INV-YYYYMMDD-NNNN
	ContactID     *string         `json:"contactID,omitempty"`
	Status        SaleStatus      `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SaleItem is a single product line on a sale.
type SaleItem struct {
	SaleItemID  string          `json:"saleItemID"`
	SaleID      string          `json:"saleID"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // percent, e.g. 7.5
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
