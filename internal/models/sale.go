package models

import "github.com/shopspring/decimal"

// Sale is a row of the sales table.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	WorkplaceID   string          `db:"workplace_id"`
	Number        string          `db:"number"`
	ContactID     *string         `db:"contact_id"` // Nullable
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxTotal      decimal.Decimal `db:"tax_total"`
	DiscountTotal decimal.Decimal `db:"discount_total"`
	Total         decimal.Decimal `db:"total"`
	Notes         string          `db:"notes"`
	AuditFields
}

// SaleItem is a row of the sale_items table.
type SaleItem struct {
	SaleItemID  string          `db:"sale_item_id"`
	SaleID      string          `db:"sale_id"`
	ProductID   string          `db:"product_id"`
	Description string          `db:"description"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	LineTotal   decimal.Decimal `db:"line_total"`
}
