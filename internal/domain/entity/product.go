package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product approval states. Providers create products as pending; only an
// admin transition makes them visible in the customer catalog.
const (
	ProductPending  = "pending"
	ProductApproved = "approved"
)

// Product is a catalog item owned by a service offeror.
type Product struct {
	ID         string
	Name       string
	Details    string
	Weight     float64
	Price      decimal.Decimal
	Category   string
	Status     string // pending, approved
	ProviderID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Approved reports whether the product may appear in the customer catalog.
func (p *Product) Approved() bool {
	return p.Status == ProductApproved
}
