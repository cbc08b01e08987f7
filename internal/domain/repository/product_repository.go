package repository

import "github.com/quickdeliver/quickdeliver/internal/domain/entity"

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStatus(id, status string) error
	List() ([]*entity.Product, error)
	ListByIDs(ids []string) ([]*entity.Product, error)
	Delete(id string) error
}
