package domain

import "time"

// Workplace is the tenant: every sale, purchase order and deal belongs to exactly one.
type Workplace struct {
	WorkplaceID  string `json:"workplaceID"`  // Primary Key (UUID)
	Name         string `json:"name"`         // User-defined name for the workplace
	Description  string `json:"description"`  // Optional description
	CurrencyCode string `json:"currencyCode"` // Currency used to display amounts, e.g. "USD"
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // Users with read-only access to workplace data
)

// IsValid reports whether r is one of the assignable roles.
func (r UserWorkplaceRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly:
		return true
	}
	return false
}

// Satisfies reports whether a user holding r may perform an action requiring required.
// ADMIN > MEMBER > READONLY.
func (r UserWorkplaceRole) Satisfies(required UserWorkplaceRole) bool {
	return roleRank(r) > 0 && roleRank(r) >= roleRank(required)
}

func roleRank(r UserWorkplaceRole) int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleMember:
		return 2
	case RoleReadOnly:
		return 1
	default:
		return 0
	}
}

// UserWorkplace represents the membership of a User in a Workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`
	WorkplaceID string            `json:"workplaceID"`
	Role        UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}
