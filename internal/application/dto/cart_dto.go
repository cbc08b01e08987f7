package dto

import "github.com/shopspring/decimal"

// CartItemRequest body for POST /api/customers/:id/cart/add and /cart/remove.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
}

// CartResponse body of GET /api/customers/:id/cart. Products is a flat list
// where duplicate entries of one product express its quantity; TotalPrice is
// the server-maintained total the client must display verbatim.
type CartResponse struct {
	ID         string            `json:"id"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	Products   []ProductResponse `json:"products"`
}

// CartMutationResponse acknowledges an add/remove with the resulting total
// and the flat product id list.
type CartMutationResponse struct {
	Message    string          `json:"message"`
	CartPrice  decimal.Decimal `json:"cart_price"`
	ProductIDs []string        `json:"products"`
}
