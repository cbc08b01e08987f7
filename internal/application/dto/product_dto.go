package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products. Status lets an admin
// create directly-approved products; providers submit "pending".
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category"`
	ProviderID string          `json:"provider_id"`
	Status     string          `json:"status"`
	Details    string          `json:"details"`
	Weight     float64         `json:"weight"`
}

// UpdateProductRequest body for PUT /api/products/:id. Only non-nil fields
// are applied; approval state is not updatable here (see /approve).
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Category *string          `json:"category,omitempty"`
	Details  *string          `json:"details,omitempty"`
}

// ProductResponse is a product as returned by the catalog endpoints.
// OwnerName is the provider's display name, filled on listings.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Details    string          `json:"details"`
	Weight     float64         `json:"weight"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category"`
	Status     string          `json:"status"`
	ProviderID string          `json:"provider_id"`
	OwnerName  string          `json:"ownerName,omitempty"`
}
