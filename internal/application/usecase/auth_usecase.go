package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

// AuthUseCase authentication and account creation: login, customer signup
// and the admin-driven creation of admin/provider/courier accounts.
type AuthUseCase struct {
	accounts repository.AccountRepository
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(accounts repository.AccountRepository) *AuthUseCase {
	return &AuthUseCase{accounts: accounts}
}

// Login verifies email/password and returns the role-tagged account.
// Returns ErrUnauthorized for an unknown email or a wrong password; the
// handler collapses both into one message so the response does not leak
// which emails exist.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AccountResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accounts.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return toAccountResponse(account), nil
}

// SignupCustomer creates a customer account: hashes the password with bcrypt
// and persists. Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) SignupCustomer(in dto.SignupRequest) (*dto.AccountResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.newAccount(in.Name, in.Email, in.Password, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	account.Address = in.Address
	account.Phone = in.Phone
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// CreateAdmin creates an admin account (status defaults to "Active").
func (uc *AuthUseCase) CreateAdmin(in dto.CreateAdminRequest) (*dto.AccountResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.newAccount(in.Name, in.Email, in.Password, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	account.Status = in.Status
	if account.Status == "" {
		account.Status = "Active"
	}
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// CreateProvider creates a service offeror account.
func (uc *AuthUseCase) CreateProvider(in dto.CreateProviderRequest) (*dto.AccountResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.newAccount(in.Name, in.Email, in.Password, entity.RoleServiceOfferor)
	if err != nil {
		return nil, err
	}
	account.ServiceType = in.ServiceType
	account.Area = in.Area
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// CreateCourier creates a courier account with status "Active".
func (uc *AuthUseCase) CreateCourier(in dto.CreateCourierRequest) (*dto.AccountResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.newAccount(in.Name, in.Email, in.Password, entity.RoleCourier)
	if err != nil {
		return nil, err
	}
	account.Area = in.Area
	account.Vehicle = in.Vehicle
	account.Status = "Active"
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

func (uc *AuthUseCase) newAccount(name, email, password, role string) (*entity.Account, error) {
	existing, err := uc.accounts.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Account{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// toAccountResponse maps an account to its wire form. Only the fields the
// account's role owns are exposed, mirroring the original per-role payloads.
func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	out := &dto.AccountResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
	switch a.Role {
	case entity.RoleCustomer:
		out.Address = a.Address
		out.Phone = a.Phone
	case entity.RoleAdmin:
		out.Status = a.Status
	case entity.RoleServiceOfferor:
		out.ServiceType = a.ServiceType
		out.Area = a.Area
	case entity.RoleCourier:
		out.Status = a.Status
		out.Area = a.Area
		out.Vehicle = a.Vehicle
		salary := a.Salary
		out.Salary = &salary
	}
	return out
}
