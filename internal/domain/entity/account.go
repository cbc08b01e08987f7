package entity

import "time"

// Roles known to the platform. Login responses and session cookies carry
// exactly one of these values.
const (
	RoleCustomer       = "customer"
	RoleAdmin          = "admin"
	RoleServiceOfferor = "serviceOfferor"
	RoleCourier        = "courier"
)

// Account represents any user of the marketplace. The original system kept
// one table per role; a single table with a role discriminator and nullable
// role-specific columns preserves the same observable behavior (email is
// unique across all roles).
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	Role         string // customer, admin, serviceOfferor, courier

	// Customer fields.
	Address string
	Phone   string

	// Admin and courier share a free-form status ("Active", ...).
	Status string

	// Service offeror fields.
	ServiceType string

	// Courier fields. Area is also used by service offerors.
	Area    string
	Vehicle string
	Salary  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
