package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

// ProductUseCase catalog CRUD plus the admin approval transition. Listings
// are enriched with the provider's display name.
type ProductUseCase struct {
	products repository.ProductRepository
	accounts repository.AccountRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(products repository.ProductRepository, accounts repository.AccountRepository) *ProductUseCase {
	return &ProductUseCase{products: products, accounts: accounts}
}

// Create registers a product under an existing provider. Returns
// ErrProviderNotFound when the provider id does not belong to a service
// offeror. An empty status defaults to pending.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.ProviderID == "" {
		return nil, domain.ErrInvalidInput
	}
	provider, err := uc.accounts.GetByID(in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil || provider.Role != entity.RoleServiceOfferor {
		return nil, domain.ErrProviderNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.ProductPending
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Details:    in.Details,
		Weight:     in.Weight,
		Price:      in.Price,
		Category:   in.Category,
		Status:     status,
		ProviderID: in.ProviderID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, provider.Name), nil
}

// GetByID returns a product or ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product, ""), nil
}

// Update applies name/price/category/details changes. Approval state is not
// touched here; only Approve moves it.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Details != nil {
		product.Details = *in.Details
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// Approve moves a product to the approved state.
func (uc *ProductUseCase) Approve(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.products.UpdateStatus(id, entity.ProductApproved); err != nil {
		return nil, err
	}
	product.Status = entity.ProductApproved
	return toProductResponse(product, ""), nil
}

// List returns the whole catalog, pending and approved alike; callers filter
// by status. Each entry carries the provider's display name.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.providerNames()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p, names[p.ProviderID]))
	}
	return out, nil
}

// Delete removes a product. Returns ErrNotFound for an unknown id.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

func (uc *ProductUseCase) providerNames() (map[string]string, error) {
	providers, err := uc.accounts.ListByRole(entity.RoleServiceOfferor)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(providers))
	for _, p := range providers {
		names[p.ID] = p.Name
	}
	return names, nil
}

func toProductResponse(p *entity.Product, ownerName string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Details:    p.Details,
		Weight:     p.Weight,
		Price:      p.Price,
		Category:   p.Category,
		Status:     p.Status,
		ProviderID: p.ProviderID,
		OwnerName:  ownerName,
	}
}
