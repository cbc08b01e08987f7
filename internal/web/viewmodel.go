package web

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
)

// View models are pure mappings from API payloads to what the templates
// print. Nothing here talks to the network or carries state.

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a decimal amount as "1,234.50 EGP".
func FormatPrice(d decimal.Decimal) string {
	return pricePrinter.Sprintf("%.2f EGP", d.InexactFloat64())
}

// CategoryIcon maps a product category to its storefront icon.
func CategoryIcon(category string) string {
	switch category {
	case "Pizza":
		return "🍕"
	case "Burgers":
		return "🍔"
	case "Drinks":
		return "🥤"
	case "Desserts":
		return "🍰"
	default:
		return "📦"
	}
}

// RoleDisplay maps a role key to its display name. Unknown roles render
// as-is.
func RoleDisplay(role string) string {
	switch role {
	case "customer":
		return "Customer"
	case "admin":
		return "Admin"
	case "serviceOfferor":
		return "Service Partner"
	case "courier":
		return "Courier"
	default:
		return role
	}
}

// StatusDisplay capitalizes the first letter of a status key.
func StatusDisplay(status string) string {
	if status == "" {
		return ""
	}
	r := []rune(status)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// ShortID truncates an entity id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// CatalogItem is one product card on the shop view.
type CatalogItem struct {
	ID       string
	Name     string
	Details  string
	Category string
	Icon     string
	Owner    string
	Price    string
}

// FilterCatalog keeps approved products matching the category filter
// ("all" keeps every approved product) and maps them to cards. Non-approved
// products never pass, whatever the filter says.
func FilterCatalog(products []dto.ProductResponse, category string) []CatalogItem {
	items := make([]CatalogItem, 0, len(products))
	for _, p := range products {
		if p.Status != "approved" {
			continue
		}
		if category != "all" && p.Category != category {
			continue
		}
		items = append(items, CatalogItem{
			ID:       p.ID,
			Name:     p.Name,
			Details:  p.Details,
			Category: p.Category,
			Icon:     CategoryIcon(p.Category),
			Owner:    p.OwnerName,
			Price:    FormatPrice(p.Price),
		})
	}
	return items
}

// CartLine is one grouped cart row: a product with its occurrence count.
type CartLine struct {
	ProductID string
	Name      string
	Qty       int
	Unit      string
	Subtotal  string
}

// CartView is the grouped cart plus the server-computed total, taken
// verbatim rather than re-added client-side.
type CartView struct {
	Lines      []CartLine
	Total      string
	Count      int
	ProductIDs []string // one entry per occurrence, checkout submits these
}

// GroupCart collapses duplicate cart entries into quantity lines, in first
// occurrence order.
func GroupCart(cart *dto.CartResponse) CartView {
	view := CartView{Total: FormatPrice(decimal.Zero)}
	if cart == nil {
		return view
	}
	counts := make(map[string]int)
	var order []dto.ProductResponse
	for _, p := range cart.Products {
		if counts[p.ID] == 0 {
			order = append(order, p)
		}
		counts[p.ID]++
		view.ProductIDs = append(view.ProductIDs, p.ID)
	}
	for _, p := range order {
		n := counts[p.ID]
		view.Lines = append(view.Lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Qty:       n,
			Unit:      FormatPrice(p.Price),
			Subtotal:  FormatPrice(p.Price.Mul(decimal.NewFromInt(int64(n)))),
		})
	}
	view.Count = len(cart.Products)
	if len(cart.Products) > 0 {
		view.Total = FormatPrice(cart.TotalPrice)
	}
	return view
}

// OrderCard is one order entry on the customer or courier view.
type OrderCard struct {
	ID            string
	ShortID       string
	Status        string
	StatusLabel   string
	Total         string
	PaymentMethod string
	Date          string
	CustomerName  string
	CustomerRef   string
	Items         []OrderItemView
}

// OrderItemView is a name/price pair on an order card.
type OrderItemView struct {
	Name  string
	Price string
}

// OrderCards maps API orders to cards.
func OrderCards(orders []dto.OrderResponse) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, orderCard(o))
	}
	return cards
}

// ActiveOrders keeps orders still in flight: everything except delivered and
// cancelled.
func ActiveOrders(orders []dto.OrderResponse) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		if o.Status == "delivered" || o.Status == "cancelled" {
			continue
		}
		cards = append(cards, orderCard(o))
	}
	return cards
}

func orderCard(o dto.OrderResponse) OrderCard {
	card := OrderCard{
		ID:            o.ID,
		ShortID:       ShortID(o.ID),
		Status:        o.Status,
		StatusLabel:   StatusDisplay(o.Status),
		Total:         FormatPrice(o.TotalPrice),
		PaymentMethod: o.PaymentMethod,
		Date:          o.Date,
		CustomerName:  o.CustomerName,
	}
	if len(o.CustomerID) > 5 {
		card.CustomerRef = o.CustomerID[:5] + "..."
	} else {
		card.CustomerRef = o.CustomerID
	}
	for _, it := range o.Items {
		card.Items = append(card.Items, OrderItemView{Name: it.Name, Price: FormatPrice(it.Price)})
	}
	return card
}

// AccountRow is one row in the admin users table.
type AccountRow struct {
	ID       string
	ShortID  string
	Name     string
	Email    string
	Role     string
	RoleKey  string
	Detail   string
}

// AccountRows maps accounts to table rows. Detail carries the most useful
// role-specific field.
func AccountRows(accounts []dto.AccountResponse) []AccountRow {
	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		detail := ""
		switch a.Role {
		case "customer":
			detail = a.Address
		case "admin":
			detail = StatusDisplay(a.Status)
		case "serviceOfferor":
			detail = a.ServiceType
		case "courier":
			detail = a.Area
		}
		rows = append(rows, AccountRow{
			ID:      a.ID,
			ShortID: ShortID(a.ID),
			Name:    a.Name,
			Email:   a.Email,
			Role:    RoleDisplay(a.Role),
			RoleKey: a.Role,
			Detail:  detail,
		})
	}
	return rows
}

// ProductRow is one row in the admin/provider product lists.
type ProductRow struct {
	ID          string
	Name        string
	Category    string
	Price       string
	Status      string
	StatusLabel string
	Owner       string
	Approved    bool
}

// ProductRows maps products to list rows.
func ProductRows(products []dto.ProductResponse) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       FormatPrice(p.Price),
			Status:      p.Status,
			StatusLabel: StatusDisplay(p.Status),
			Owner:       p.OwnerName,
			Approved:    p.Status == "approved",
		})
	}
	return rows
}

// PendingProducts keeps products awaiting approval.
func PendingProducts(products []dto.ProductResponse) []ProductRow {
	rows := make([]ProductRow, 0)
	for _, p := range products {
		if p.Status == "pending" {
			rows = append(rows, ProductRow{
				ID:       p.ID,
				Name:     p.Name,
				Category: p.Category,
				Price:    FormatPrice(p.Price),
				Status:   p.Status,
				Owner:    p.OwnerName,
			})
		}
	}
	return rows
}

// ProductsByProvider keeps a provider's own products.
func ProductsByProvider(products []dto.ProductResponse, providerID string) []dto.ProductResponse {
	own := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if p.ProviderID == providerID {
			own = append(own, p)
		}
	}
	return own
}

// FindProduct looks a product up by id; nil when absent.
func FindProduct(products []dto.ProductResponse, id string) *dto.ProductResponse {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// Categories the shop filter offers, in display order.
var Categories = []string{"Pizza", "Burgers", "Drinks", "Desserts", "Other"}
