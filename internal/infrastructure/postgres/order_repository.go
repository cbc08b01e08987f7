package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port on PostgreSQL. Product
// entries live in order_items, one row per occurrence.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists the order header and its product entries.
func (r *OrderRepo) Create(o *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, customer_id, courier_id, status, payment_method, price, total_weight, order_date)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`,
		o.ID, o.CustomerID, o.CourierID, o.Status, o.PaymentMethod, o.Price, o.TotalWeight, o.OrderDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, p := range o.Products {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id) VALUES ($1, $2)`,
			o.ID, p.ID,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID fetches an order with its product entries. Returns nil when absent.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	var courier *string
	err := r.q.QueryRow(context.Background(), `
		SELECT id, customer_id, courier_id, status, payment_method, price, total_weight, order_date
		FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerID, &courier, &o.Status, &o.PaymentMethod, &o.Price, &o.TotalWeight, &o.OrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if courier != nil {
		o.CourierID = *courier
	}
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns every order, newest first, each with its product entries.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	return r.list(`SELECT id, customer_id, courier_id, status, payment_method, price, total_weight, order_date
		FROM orders ORDER BY order_date DESC`)
}

// ListByCustomer returns the customer's orders, newest first.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	return r.list(`SELECT id, customer_id, courier_id, status, payment_method, price, total_weight, order_date
		FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`, customerID)
}

// UpdateStatus sets the lifecycle state.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// AssignCourier attaches a courier to the order.
func (r *OrderRepo) AssignCourier(id, courierID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET courier_id = $2 WHERE id = $1`, id, courierID)
	if err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var courier *string
		if err := rows.Scan(&o.ID, &o.CustomerID, &courier, &o.Status, &o.PaymentMethod,
			&o.Price, &o.TotalWeight, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if courier != nil {
			o.CourierID = *courier
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *OrderRepo) loadItems(o *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT p.id, p.name, p.details, p.weight, p.price, p.category, p.status, p.provider_id, p.created_at, p.updated_at
		FROM order_items oi JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1 ORDER BY oi.seq`,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Details, &p.Weight, &p.Price, &p.Category,
			&p.Status, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Products = append(o.Products, p)
	}
	return rows.Err()
}
