package models

// Workplace is a row of the workplaces table.
type Workplace struct {
	WorkplaceID  string `db:"workplace_id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	CurrencyCode string `db:"currency_code"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
