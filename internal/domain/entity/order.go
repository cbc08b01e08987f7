package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle states. Couriers move orders forward; delivered and
// cancelled are terminal and drop the order from the courier board.
const (
	OrderPending   = "pending"
	OrderOnTheWay  = "on-the-way"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order is a placed purchase. Products keeps the flat list submitted at
// checkout (duplicates per quantity); Price and TotalWeight are computed
// from it at creation and never recomputed client-side.
type Order struct {
	ID            string
	CustomerID    string
	CourierID     string // empty until a courier picks the order up
	Status        string
	PaymentMethod string
	Price         decimal.Decimal
	TotalWeight   float64
	OrderDate     time.Time
	Products      []Product
}

// Terminal reports whether the order left the active courier board.
func (o *Order) Terminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}

// CalculatePrice sums the product prices into Price.
func (o *Order) CalculatePrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	o.Price = total
	return total
}

// CalculateWeight sums the product weights into TotalWeight.
func (o *Order) CalculateWeight() float64 {
	var w float64
	for _, p := range o.Products {
		w += p.Weight
	}
	o.TotalWeight = w
	return w
}
