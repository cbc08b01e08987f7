package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implements the CartRepository port on PostgreSQL. Cart entries
// live in cart_items; one row per occurrence, so duplicates express
// quantity. The carts.price column is refreshed inside every mutation.
type CartRepo struct {
	q Querier
}

// NewCartRepository builds the persistence adapter for carts.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// refreshPriceSQL recomputes a cart's total from its current entries.
const refreshPriceSQL = `
	UPDATE carts SET price = COALESCE((
		SELECT SUM(p.price) FROM cart_items ci JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
	), 0)
	WHERE id = $1`

// Create persists an empty cart.
func (r *CartRepo) Create(c *entity.Cart) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO carts (id, customer_id, price) VALUES ($1, $2, $3)`,
		c.ID, c.CustomerID, c.Price,
	)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// GetByCustomer fetches the customer's cart with its entries in insertion
// order. Returns nil when the customer has no cart yet.
func (r *CartRepo) GetByCustomer(customerID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(context.Background(),
		`SELECT id, customer_id, price FROM carts WHERE customer_id = $1`,
		customerID,
	).Scan(&c.ID, &c.CustomerID, &c.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT p.id, p.name, p.details, p.weight, p.price, p.category, p.status, p.provider_id, p.created_at, p.updated_at
		FROM cart_items ci JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 ORDER BY ci.added_at, ci.seq`,
		c.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Details, &p.Weight, &p.Price, &p.Category,
			&p.Status, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItem appends one entry for the product and refreshes the total.
func (r *CartRepo) AddItem(cartID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO cart_items (cart_id, product_id) VALUES ($1, $2)`,
		cartID, productID,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return r.refreshPrice(cartID)
}

// RemoveItem deletes one entry for the product (the oldest) and refreshes
// the total. No matching entry is a no-op.
func (r *CartRepo) RemoveItem(cartID, productID string) error {
	_, err := r.q.Exec(context.Background(), `
		DELETE FROM cart_items WHERE seq = (
			SELECT seq FROM cart_items
			WHERE cart_id = $1 AND product_id = $2
			ORDER BY added_at, seq LIMIT 1
		)`,
		cartID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return r.refreshPrice(cartID)
}

// Clear drops all entries and zeroes the total.
func (r *CartRepo) Clear(cartID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return r.refreshPrice(cartID)
}

func (r *CartRepo) refreshPrice(cartID string) error {
	if _, err := r.q.Exec(context.Background(), refreshPriceSQL, cartID); err != nil {
		return fmt.Errorf("refresh cart price: %w", err)
	}
	return nil
}
