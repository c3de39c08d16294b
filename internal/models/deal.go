package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a row of the deals table, optionally joined with its contact and company.
type Deal struct {
	DealID            string           `db:"deal_id"`
	WorkplaceID       string           `db:"workplace_id"`
	Title             string           `db:"title"`
	Description       string           `db:"description"`
	Value             *decimal.Decimal `db:"value"` // Nullable
	Stage             string           `db:"stage"`
	Probability       int              `db:"probability"`
	ExpectedCloseDate *time.Time       `db:"expected_close_date"`
	ActualCloseDate   *time.Time       `db:"actual_close_date"`
	Notes             string           `db:"notes"`
	ContactID         *string          `db:"contact_id"`
	CompanyID         *string          `db:"company_id"`
	AuditFields

	// Joined columns, populated by pipeline queries only.
	ContactFirstName *string `db:"contact_first_name"`
	ContactLastName  *string `db:"contact_last_name"`
	CompanyName      *string `db:"company_name"`
}
