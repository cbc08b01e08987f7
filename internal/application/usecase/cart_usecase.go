package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

// CartUseCase cart operations keyed by customer. A cart is created lazily on
// first access; a missing cart is never an error for an existing customer.
type CartUseCase struct {
	carts    repository.CartRepository
	accounts repository.AccountRepository
	products repository.ProductRepository
}

// NewCartUseCase builds the use case.
func NewCartUseCase(carts repository.CartRepository, accounts repository.AccountRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, accounts: accounts, products: products}
}

// View returns the customer's cart, creating an empty one when none exists.
// Returns ErrUserNotFound for an unknown customer.
func (uc *CartUseCase) View(customerID string) (*dto.CartResponse, error) {
	cart, err := uc.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddProduct appends one entry of the product to the cart. Duplicate entries
// express quantity.
func (uc *CartUseCase) AddProduct(customerID, productID string) (*dto.CartMutationResponse, error) {
	cart, err := uc.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.carts.AddItem(cart.ID, productID); err != nil {
		return nil, err
	}
	return uc.mutationResponse(customerID, "Product added to cart")
}

// RemoveProduct deletes a single entry of the product from the cart.
func (uc *CartUseCase) RemoveProduct(customerID, productID string) (*dto.CartMutationResponse, error) {
	if err := uc.requireCustomer(customerID); err != nil {
		return nil, err
	}
	cart, err := uc.carts.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.carts.RemoveItem(cart.ID, productID); err != nil {
		return nil, err
	}
	return uc.mutationResponse(customerID, "Product removed from cart")
}

// Clear empties the customer's cart. Used after a successful checkout; a
// customer without a cart is a no-op.
func (uc *CartUseCase) Clear(customerID string) error {
	cart, err := uc.carts.GetByCustomer(customerID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return uc.carts.Clear(cart.ID)
}

func (uc *CartUseCase) requireCustomer(customerID string) error {
	a, err := uc.accounts.GetByID(customerID)
	if err != nil {
		return err
	}
	if a == nil || a.Role != entity.RoleCustomer {
		return domain.ErrUserNotFound
	}
	return nil
}

func (uc *CartUseCase) getOrCreate(customerID string) (*entity.Cart, error) {
	if err := uc.requireCustomer(customerID); err != nil {
		return nil, err
	}
	cart, err := uc.carts.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &entity.Cart{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Price:      decimal.Zero,
	}
	if err := uc.carts.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (uc *CartUseCase) mutationResponse(customerID, message string) (*dto.CartMutationResponse, error) {
	cart, err := uc.carts.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	ids := make([]string, 0, len(cart.Items))
	for _, p := range cart.Items {
		ids = append(ids, p.ID)
	}
	return &dto.CartMutationResponse{
		Message:    message,
		CartPrice:  cart.Price,
		ProductIDs: ids,
	}, nil
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	products := make([]dto.ProductResponse, 0, len(c.Items))
	for i := range c.Items {
		products = append(products, *toProductResponse(&c.Items[i], ""))
	}
	return &dto.CartResponse{
		ID:         c.ID,
		TotalPrice: c.Price,
		Products:   products,
	}
}
