package repository

import "github.com/quickdeliver/quickdeliver/internal/domain/entity"

// AccountRepository defines the persistence port for Account (DIP).
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	FindByEmail(email string) (*entity.Account, error)
	Update(account *entity.Account) error
	List() ([]*entity.Account, error)
	ListByRole(role string) ([]*entity.Account, error)
}
