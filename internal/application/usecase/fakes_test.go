package usecase_test

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
)

// In-memory repository fakes. They mimic the contract of the postgres
// adapters: lookups return (nil, nil) for missing rows, the cart fake keeps
// one entry per occurrence and maintains the stored total.

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(email string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAccountRepo) ListByRole(role string) ([]*entity.Account, error) {
	all, _ := r.List()
	out := make([]*entity.Account, 0)
	for _, a := range all {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStatus(id, status string) error {
	if p, ok := r.products[id]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeCartRepo struct {
	products *fakeProductRepo
	carts    map[string]*entity.Cart // by cart id
	items    map[string][]string     // cart id -> product ids, one per occurrence
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{
		products: products,
		carts:    map[string]*entity.Cart{},
		items:    map[string][]string{},
	}
}

func (r *fakeCartRepo) Create(c *entity.Cart) error {
	cp := *c
	r.carts[c.ID] = &cp
	return nil
}

func (r *fakeCartRepo) GetByCustomer(customerID string) (*entity.Cart, error) {
	for _, c := range r.carts {
		if c.CustomerID == customerID {
			out := &entity.Cart{ID: c.ID, CustomerID: c.CustomerID}
			for _, pid := range r.items[c.ID] {
				if p, _ := r.products.GetByID(pid); p != nil {
					out.Items = append(out.Items, *p)
				}
			}
			out.RecalculatePrice()
			return out, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) AddItem(cartID, productID string) error {
	r.items[cartID] = append(r.items[cartID], productID)
	return nil
}

func (r *fakeCartRepo) RemoveItem(cartID, productID string) error {
	list := r.items[cartID]
	for i, pid := range list {
		if pid == productID {
			r.items[cartID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepo) Clear(cartID string) error {
	r.items[cartID] = nil
	if c, ok := r.carts[cartID]; ok {
		c.Price = decimal.Zero
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) List() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	all, _ := r.List()
	out := make([]*entity.Order, 0)
	for _, o := range all {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) AssignCourier(id, courierID string) error {
	if o, ok := r.orders[id]; ok {
		o.CourierID = courierID
	}
	return nil
}
