package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/application/usecase"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
)

func seedAllRoles(accounts *fakeAccountRepo) {
	accounts.Create(&entity.Account{ID: "courier-1", Name: "Nour", Role: entity.RoleCourier, Area: "Downtown", Vehicle: "Scooter", Status: "Active"})
	accounts.Create(&entity.Account{ID: "admin-1", Name: "Mohamed", Role: entity.RoleAdmin, Status: "Active"})
	accounts.Create(&entity.Account{ID: "cust-1", Name: "Ahmed", Role: entity.RoleCustomer, Address: "Cairo", Phone: "0123"})
	accounts.Create(&entity.Account{ID: "prov-1", Name: "Pizza King", Role: entity.RoleServiceOfferor, ServiceType: "Restaurant", Area: "Cairo"})
}

func TestAccountListOrdersByRole(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 4)

	roles := make([]string, 0, len(list))
	for _, a := range list {
		roles = append(roles, a.Role)
	}
	assert.Equal(t, []string{
		entity.RoleCustomer, entity.RoleAdmin, entity.RoleServiceOfferor, entity.RoleCourier,
	}, roles)
}

func TestAccountGetCustomer(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	got, err := uc.GetCustomer("cust-1")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", got.Name)
	assert.Equal(t, "Cairo", got.Address)

	_, err = uc.GetCustomer("admin-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = uc.GetCustomer("ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountUpdateAppliesRoleFields(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	addr := "Giza"
	serviceType := "Bakery"
	res, err := uc.Update("cust-1", dto.UpdateAccountRequest{Address: &addr, ServiceType: &serviceType})
	require.NoError(t, err)
	assert.Equal(t, "Giza", res.Address)
	// A provider-only field on a customer update is ignored.
	assert.Empty(t, res.ServiceType)

	salary := 3500.0
	res, err = uc.Update("courier-1", dto.UpdateAccountRequest{Salary: &salary, Address: &addr})
	require.NoError(t, err)
	require.NotNil(t, res.Salary)
	assert.Equal(t, 3500.0, *res.Salary)
	assert.Empty(t, res.Address)

	_, err = uc.Update("ghost", dto.UpdateAccountRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountUpdateProvider(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	area := "Maadi"
	res, err := uc.UpdateProvider("prov-1", dto.UpdateAccountRequest{Area: &area})
	require.NoError(t, err)
	assert.Equal(t, "Maadi", res.Area)
	assert.Equal(t, "Restaurant", res.ServiceType)

	_, err = uc.UpdateProvider("cust-1", dto.UpdateAccountRequest{Area: &area})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestAccountListProviders(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	providers, err := uc.ListProviders()
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "prov-1", providers[0].ID)
}

func TestAccountUpdateCourierArea(t *testing.T) {
	accounts := newFakeAccountRepo()
	uc := usecase.NewAccountUseCase(accounts)
	seedAllRoles(accounts)

	res, err := uc.UpdateCourierArea("courier-1", "Maadi")
	require.NoError(t, err)
	assert.Equal(t, "Maadi", res.Area)

	_, err = uc.UpdateCourierArea("cust-1", "Maadi")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.UpdateCourierArea("ghost", "Maadi")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
