package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest body for POST /api/orders. ProductIDs carries one entry
// per cart line occurrence (duplicates per quantity); the server recomputes
// the price from it.
type CreateOrderRequest struct {
	CustomerID    string   `json:"customer_id"`
	ProductIDs    []string `json:"product_ids"`
	PaymentMethod string   `json:"payment_method"`
}

// UpdateOrderRequest body for PUT /api/orders/:id. Status transitions the
// order; CourierID assigns a courier. Either may be set.
type UpdateOrderRequest struct {
	Status    *string `json:"status,omitempty"`
	CourierID *string `json:"courier_id,omitempty"`
}

// OrderItem is the name/price pair shown on order cards.
type OrderItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderResponse is an order as returned by the order listings.
type OrderResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Date            string          `json:"date"`
	CustomerID      string          `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	AssignedCourier string          `json:"assigned_courier,omitempty"`
	Items           []OrderItem     `json:"items"`
}

// CreateOrderResponse acknowledges order placement.
type CreateOrderResponse struct {
	ID         string          `json:"id"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	ProductIDs []string        `json:"products"`
}
