package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/domain"
	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/domain/repository"
)

// OrderUseCase order placement, listings and status transitions.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	accounts repository.AccountRepository
	carts    *CartUseCase
}

// NewOrderUseCase builds the use case. The cart use case is needed to clear
// the customer's cart once the order is placed.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, accounts repository.AccountRepository, carts *CartUseCase) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, accounts: accounts, carts: carts}
}

// Create places an order for the given product ids. The submitted list
// carries one entry per cart occurrence; every occurrence is priced, so the
// order total matches the cart total at checkout. Unknown ids are skipped.
// The customer's cart is cleared on success.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	customer, err := uc.accounts.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.Role != entity.RoleCustomer {
		return nil, domain.ErrUserNotFound
	}
	if len(in.ProductIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	found, err := uc.products.ListByIDs(uniqueIDs(in.ProductIDs))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	var items []entity.Product
	for _, id := range in.ProductIDs {
		if p, ok := byID[id]; ok {
			items = append(items, *p)
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Status:        entity.OrderPending,
		PaymentMethod: in.PaymentMethod,
		OrderDate:     time.Now(),
		Products:      items,
	}
	order.CalculatePrice()
	order.CalculateWeight()
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	if err := uc.carts.Clear(in.CustomerID); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(order.Products))
	for _, p := range order.Products {
		ids = append(ids, p.ID)
	}
	return &dto.CreateOrderResponse{
		ID:         order.ID,
		Price:      order.Price,
		Status:     order.Status,
		ProductIDs: ids,
	}, nil
}

// List returns every order with customer names resolved (courier board).
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := toOrderResponse(o)
		if c, err := uc.accounts.GetByID(o.CustomerID); err == nil && c != nil {
			resp.CustomerName = c.Name
		} else {
			resp.CustomerName = "Unknown"
		}
		out = append(out, *resp)
	}
	return out, nil
}

// ListByCustomer returns the customer's own orders. Returns ErrUserNotFound
// for an unknown customer.
func (uc *OrderUseCase) ListByCustomer(customerID string) ([]dto.OrderResponse, error) {
	customer, err := uc.accounts.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.Role != entity.RoleCustomer {
		return nil, domain.ErrUserNotFound
	}
	orders, err := uc.orders.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Update applies a status transition and/or a courier assignment.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if err := uc.orders.UpdateStatus(id, *in.Status); err != nil {
			return nil, err
		}
		order.Status = *in.Status
	}
	if in.CourierID != nil {
		if err := uc.orders.AssignCourier(id, *in.CourierID); err != nil {
			return nil, err
		}
		order.CourierID = *in.CourierID
	}
	return toOrderResponse(order), nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItem, 0, len(o.Products))
	for _, p := range o.Products {
		items = append(items, dto.OrderItem{Name: p.Name, Price: p.Price})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		Status:          o.Status,
		TotalPrice:      o.Price,
		PaymentMethod:   o.PaymentMethod,
		Date:            o.OrderDate.Format("2006-01-02"),
		CustomerID:      o.CustomerID,
		AssignedCourier: o.CourierID,
		Items:           items,
	}
}
