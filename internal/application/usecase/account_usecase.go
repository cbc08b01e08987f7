package usecase

import (
	"time"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

// AccountUseCase read and update operations over existing accounts: the
// users listing, generic profile updates and the courier area change.
type AccountUseCase struct {
	accounts repository.AccountRepository
}

// NewAccountUseCase builds the use case.
func NewAccountUseCase(accounts repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// List returns every account with its role tag, ordered customer, admin,
// serviceOfferor, courier — the order the original backend concatenated its
// per-role tables in.
func (uc *AccountUseCase) List() ([]dto.AccountResponse, error) {
	all, err := uc.accounts.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(all))
	for _, role := range []string{entity.RoleCustomer, entity.RoleAdmin, entity.RoleServiceOfferor, entity.RoleCourier} {
		for _, a := range all {
			if a.Role == role {
				out = append(out, *toAccountResponse(a))
			}
		}
	}
	return out, nil
}

// GetCustomer returns a customer account or ErrUserNotFound.
func (uc *AccountUseCase) GetCustomer(id string) (*dto.AccountResponse, error) {
	a, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Role != entity.RoleCustomer {
		return nil, domain.ErrUserNotFound
	}
	return toAccountResponse(a), nil
}

// Update applies a generic profile update. Which fields take effect depends
// on the account's role; everything else in the request is ignored, as in
// the original per-role update_data methods.
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUserNotFound
	}
	switch a.Role {
	case entity.RoleCustomer:
		applyString(&a.Name, in.Name)
		applyString(&a.Email, in.Email)
		applyString(&a.Address, in.Address)
		applyString(&a.Phone, in.Phone)
	case entity.RoleAdmin:
		applyString(&a.Name, in.Name)
		applyString(&a.Status, in.Status)
	case entity.RoleServiceOfferor:
		applyString(&a.ServiceType, in.ServiceType)
		applyString(&a.Area, in.Area)
	case entity.RoleCourier:
		applyString(&a.Status, in.Status)
		applyString(&a.Area, in.Area)
		if in.Salary != nil {
			a.Salary = *in.Salary
		}
	}
	a.UpdatedAt = time.Now()
	if err := uc.accounts.Update(a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// UpdateProvider applies a provider profile update (service type, area).
func (uc *AccountUseCase) UpdateProvider(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Role != entity.RoleServiceOfferor {
		return nil, domain.ErrProviderNotFound
	}
	applyString(&a.ServiceType, in.ServiceType)
	applyString(&a.Area, in.Area)
	a.UpdatedAt = time.Now()
	if err := uc.accounts.Update(a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// ListProviders returns all service offeror accounts.
func (uc *AccountUseCase) ListProviders() ([]dto.AccountResponse, error) {
	providers, err := uc.accounts.ListByRole(entity.RoleServiceOfferor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toAccountResponse(p))
	}
	return out, nil
}

// UpdateCourierArea changes a courier's delivery area. Returns ErrNotFound
// when the id does not belong to a courier.
func (uc *AccountUseCase) UpdateCourierArea(id, area string) (*dto.AccountResponse, error) {
	a, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Role != entity.RoleCourier {
		return nil, domain.ErrNotFound
	}
	a.Area = area
	a.UpdatedAt = time.Now()
	if err := uc.accounts.Update(a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
