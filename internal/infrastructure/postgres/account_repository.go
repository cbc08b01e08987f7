package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, name, email, password_hash, role, address, phone, status, service_type, area, vehicle, salary, created_at, updated_at`

// AccountRepo implements the AccountRepository port on PostgreSQL. Usable
// with a pool or a tx (Querier).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository builds the persistence adapter for accounts.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persists a new account. Email is unique across all roles.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role,
		a.Address, a.Phone, a.Status, a.ServiceType, a.Area, a.Vehicle, a.Salary,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by id. Returns nil when absent.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get account")
}

// FindByEmail fetches an account by email. Returns nil when absent.
func (r *AccountRepo) FindByEmail(email string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "find account by email")
}

// Update rewrites the mutable account fields.
func (r *AccountRepo) Update(a *entity.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone = $5, status = $6,
		    service_type = $7, area = $8, vehicle = $9, salary = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, a.Address, a.Phone, a.Status,
		a.ServiceType, a.Area, a.Vehicle, a.Salary, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// List returns every account.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`
	return r.scanMany(query)
}

// ListByRole returns the accounts holding the given role.
func (r *AccountRepo) ListByRole(role string) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE role = $1 ORDER BY created_at`
	return r.scanMany(query, role)
}

func (r *AccountRepo) scanMany(query string, args ...any) ([]*entity.Account, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
		&a.Address, &a.Phone, &a.Status, &a.ServiceType, &a.Area, &a.Vehicle, &a.Salary,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
