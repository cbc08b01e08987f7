package repository

import "github.com/quickdeliver/quickdeliver/internal/domain/entity"

// OrderRepository defines the persistence port for Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// List returns every order with its product entries (courier board).
	List() ([]*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	AssignCourier(id, courierID string) error
}
