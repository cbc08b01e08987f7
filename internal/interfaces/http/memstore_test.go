package http_test

import (
	"sort"

	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
)

// In-memory repositories backing the wire tests. Same contract as the
// postgres adapters: (nil, nil) for missing rows, one cart entry per
// occurrence.

type memAccounts struct{ byID map[string]*entity.Account }

func newMemAccounts() *memAccounts { return &memAccounts{byID: map[string]*entity.Account{}} }

func (m *memAccounts) Create(a *entity.Account) error { cp := *a; m.byID[a.ID] = &cp; return nil }
func (m *memAccounts) Update(a *entity.Account) error { cp := *a; m.byID[a.ID] = &cp; return nil }

func (m *memAccounts) GetByID(id string) (*entity.Account, error) {
	if a, ok := m.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *memAccounts) FindByEmail(email string) (*entity.Account, error) {
	for _, a := range m.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(m.byID))
	for _, a := range m.byID {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAccounts) ListByRole(role string) ([]*entity.Account, error) {
	all, _ := m.List()
	out := make([]*entity.Account, 0)
	for _, a := range all {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

type memProducts struct{ byID map[string]*entity.Product }

func newMemProducts() *memProducts { return &memProducts{byID: map[string]*entity.Product{}} }

func (m *memProducts) Create(p *entity.Product) error { cp := *p; m.byID[p.ID] = &cp; return nil }
func (m *memProducts) Update(p *entity.Product) error { cp := *p; m.byID[p.ID] = &cp; return nil }
func (m *memProducts) Delete(id string) error         { delete(m.byID, id); return nil }

func (m *memProducts) GetByID(id string) (*entity.Product, error) {
	if p, ok := m.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memProducts) UpdateStatus(id, status string) error {
	if p, ok := m.byID[id]; ok {
		p.Status = status
	}
	return nil
}

func (m *memProducts) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProducts) ListByIDs(ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memCarts struct {
	products *memProducts
	byID     map[string]*entity.Cart
	items    map[string][]string // cart id -> product ids, one per occurrence
}

func newMemCarts(products *memProducts) *memCarts {
	return &memCarts{products: products, byID: map[string]*entity.Cart{}, items: map[string][]string{}}
}

func (m *memCarts) Create(c *entity.Cart) error { cp := *c; m.byID[c.ID] = &cp; return nil }

func (m *memCarts) GetByCustomer(customerID string) (*entity.Cart, error) {
	for _, c := range m.byID {
		if c.CustomerID == customerID {
			out := &entity.Cart{ID: c.ID, CustomerID: c.CustomerID}
			for _, pid := range m.items[c.ID] {
				if p, _ := m.products.GetByID(pid); p != nil {
					out.Items = append(out.Items, *p)
				}
			}
			out.RecalculatePrice()
			return out, nil
		}
	}
	return nil, nil
}

func (m *memCarts) AddItem(cartID, productID string) error {
	m.items[cartID] = append(m.items[cartID], productID)
	return nil
}

func (m *memCarts) RemoveItem(cartID, productID string) error {
	list := m.items[cartID]
	for i, pid := range list {
		if pid == productID {
			m.items[cartID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memCarts) Clear(cartID string) error {
	m.items[cartID] = nil
	return nil
}

type memOrders struct{ byID map[string]*entity.Order }

func newMemOrders() *memOrders { return &memOrders{byID: map[string]*entity.Order{}} }

func (m *memOrders) Create(o *entity.Order) error { cp := *o; m.byID[o.ID] = &cp; return nil }

func (m *memOrders) GetByID(id string) (*entity.Order, error) {
	if o, ok := m.byID[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (m *memOrders) List() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(m.byID))
	for _, o := range m.byID {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memOrders) ListByCustomer(customerID string) ([]*entity.Order, error) {
	all, _ := m.List()
	out := make([]*entity.Order, 0)
	for _, o := range all {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(id, status string) error {
	if o, ok := m.byID[id]; ok {
		o.Status = status
	}
	return nil
}

func (m *memOrders) AssignCourier(id, courierID string) error {
	if o, ok := m.byID[id]; ok {
		o.CourierID = courierID
	}
	return nil
}
