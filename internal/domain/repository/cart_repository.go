package repository

import "github.com/quickdeliver/quickdeliver/internal/domain/entity"

// CartRepository defines the persistence port for Cart. A customer has at
// most one cart; GetByCustomer returns nil when none exists yet.
type CartRepository interface {
	Create(cart *entity.Cart) error
	GetByCustomer(customerID string) (*entity.Cart, error)
	// AddItem appends one entry for the product (duplicate entries express
	// quantity) and refreshes the stored total.
	AddItem(cartID, productID string) error
	// RemoveItem deletes a single entry for the product and refreshes the
	// stored total. Removing a product the cart does not hold is a no-op.
	RemoveItem(cartID, productID string) error
	// Clear drops all entries and zeroes the total.
	Clear(cartID string) error
}
