package entity

import "github.com/shopspring/decimal"

// Cart holds a customer's pending selection. Items is a flat product list
// where duplicate entries of the same product express quantity; Price is the
// sum over all entries and is maintained server-side on every mutation.
type Cart struct {
	ID         string
	CustomerID string
	Price      decimal.Decimal
	Items      []Product
}

// RecalculatePrice recomputes the cart total from its entries.
func (c *Cart) RecalculatePrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Items {
		total = total.Add(p.Price)
	}
	c.Price = total
	return total
}
