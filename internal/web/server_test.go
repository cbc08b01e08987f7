package web_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/client"
	"github.com/quickdeliver/quickdeliver/internal/web"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
	"github.com/quickdeliver/quickdeliver/pkg/config"
	"github.com/quickdeliver/quickdeliver/pkg/logger"
	"github.com/quickdeliver/quickdeliver/pkg/session"
)

const testSecret = "test-secret"

// fakeAPI is an in-memory stand-in for the backend, serving the JSON shapes
// the view controller consumes.
type fakeAPI struct {
	products []dto.ProductResponse
	carts    map[string]*dto.CartResponse
	orders   []dto.OrderResponse
	users    []dto.AccountResponse

	ordersPlaced  int
	areaUpdates   []string
	adminsCreated []dto.CreateAdminRequest
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{carts: map[string]*dto.CartResponse{}}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		json.NewDecoder(r.Body).Decode(&in)
		if in.Email == "ahmed@email.com" && in.Password == "123456" {
			json.NewEncoder(w).Encode(dto.AccountResponse{ID: "customer-2", Name: "Ahmed Hassan", Role: "customer"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid email or password"})
	})

	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.products)
	})

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.users)
	})

	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.orders)
	})

	mux.HandleFunc("GET /customers/{id}/cart", func(w http.ResponseWriter, r *http.Request) {
		if cart, ok := f.carts[r.PathValue("id")]; ok {
			json.NewEncoder(w).Encode(cart)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Cart not found"})
	})

	mux.HandleFunc("GET /customers/{id}/orders", func(w http.ResponseWriter, r *http.Request) {
		out := []dto.OrderResponse{}
		for _, o := range f.orders {
			if o.CustomerID == r.PathValue("id") {
				out = append(out, o)
			}
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var in dto.CreateOrderRequest
		json.NewDecoder(r.Body).Decode(&in)
		f.ordersPlaced++
		delete(f.carts, in.CustomerID)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.CreateOrderResponse{
			ID: "order-9999xyz", Status: "pending", ProductIDs: in.ProductIDs,
		})
	})

	mux.HandleFunc("PUT /products/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i := range f.products {
			if f.products[i].ID == id {
				f.products[i].Status = "approved"
				json.NewEncoder(w).Encode(f.products[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Product not found"})
	})

	mux.HandleFunc("POST /admins", func(w http.ResponseWriter, r *http.Request) {
		var in dto.CreateAdminRequest
		json.NewDecoder(r.Body).Decode(&in)
		f.adminsCreated = append(f.adminsCreated, in)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.AccountResponse{
			ID: "admin-9", Name: in.Name, Role: "admin", Status: in.Status,
		})
	})

	mux.HandleFunc("PUT /couriers/{id}/area", func(w http.ResponseWriter, r *http.Request) {
		var in dto.UpdateAreaRequest
		json.NewDecoder(r.Body).Decode(&in)
		f.areaUpdates = append(f.areaUpdates, in.Area)
		json.NewEncoder(w).Encode(dto.AccountResponse{
			ID: r.PathValue("id"), Role: "courier", Area: in.Area,
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "not found"})
	})

	return mux
}

type webFixture struct {
	app *fiber.App
	api *fakeAPI
}

func newWebFixture(t *testing.T) *webFixture {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	server := web.NewServer(client.New(srv.URL), log, config.SessionConfig{
		Secret:     testSecret,
		TTLMinutes: 240,
		Issuer:     "quickdeliver-web",
	})
	return &webFixture{app: server.App("quickdeliver-web-test"), api: api}
}

func sessionCookieFor(t *testing.T, accountID, name, role, area string) *http.Cookie {
	t.Helper()
	tok, err := session.Generate(testSecret, accountID, name, role, area, "quickdeliver-web", 240)
	require.NoError(t, err)
	return &http.Cookie{Name: "qd_session", Value: tok}
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeFlash(t *testing.T, resp *http.Response) *flash.Flash {
	t.Helper()
	c := findCookie(resp, "qd_flash")
	require.NotNil(t, c, "expected a flash cookie")
	codec := flash.NewCodec([]byte(testSecret), "qd_flash", false)
	f, err := codec.Decode(c.Value)
	require.NoError(t, err)
	return f
}

func TestLoginOpensSessionAndDispatches(t *testing.T) {
	fx := newWebFixture(t)

	resp := postForm(t, fx.app, "/login", url.Values{
		"email": {"ahmed@email.com"}, "password": {"123456"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	sess := findCookie(resp, "qd_session")
	require.NotNil(t, sess)
	claims, err := session.Parse(testSecret, sess.Value)
	require.NoError(t, err)
	assert.Equal(t, "customer-2", claims.Subject)
	assert.Equal(t, "customer", claims.Role)
	// Browser-session cookie: no Max-Age, no Expires.
	assert.Zero(t, sess.MaxAge)

	f := decodeFlash(t, resp)
	assert.Equal(t, flash.KindSuccess, f.Kind)
	assert.Equal(t, "Welcome back, Ahmed Hassan!", f.Message)

	resp, _ = get(t, fx.app, "/", sess)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/shop", resp.Header.Get("Location"))
}

func TestLoginRejectionFlashesAPIMessage(t *testing.T) {
	fx := newWebFixture(t)

	resp := postForm(t, fx.app, "/login", url.Values{
		"email": {"ahmed@email.com"}, "password": {"wrong"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Nil(t, findCookie(resp, "qd_session"))

	f := decodeFlash(t, resp)
	assert.Equal(t, flash.KindError, f.Kind)
	assert.Equal(t, "Invalid email or password", f.Message)
}

func TestRoleSectionsAreFenced(t *testing.T) {
	fx := newWebFixture(t)

	// No session at all.
	resp, _ := get(t, fx.app, "/shop", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// An admin session opens the admin section but not the shop.
	admin := sessionCookieFor(t, "admin-1", "Mohamed Salah", "admin", "")
	resp, _ = get(t, fx.app, "/shop", admin)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, body := get(t, fx.app, "/admin", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Pending products")
	assert.Contains(t, body, "Mohamed Salah")
	assert.Contains(t, body, "Admin")

	// A customer session cannot open the admin section.
	customer := sessionCookieFor(t, "customer-2", "Ahmed Hassan", "customer", "")
	resp, _ = get(t, fx.app, "/admin", customer)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Provider and courier sections open for their own roles.
	provider := sessionCookieFor(t, "provider-3", "Pizza King", "serviceOfferor", "")
	resp, _ = get(t, fx.app, "/provider", provider)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	courier := sessionCookieFor(t, "courier-4", "Omar Farouk", "courier", "Downtown Cairo")
	resp, _ = get(t, fx.app, "/courier", courier)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestShopShowsOnlyApprovedProducts(t *testing.T) {
	fx := newWebFixture(t)
	fx.api.products = []dto.ProductResponse{
		{ID: "p1", Name: "Margherita", Category: "Pizza", Price: decimal.NewFromInt(90), Status: "approved", OwnerName: "Pizza King"},
		{ID: "p2", Name: "Seafood Special", Category: "Pizza", Price: decimal.NewFromInt(150), Status: "pending", OwnerName: "Pizza King"},
	}

	customer := sessionCookieFor(t, "customer-2", "Ahmed Hassan", "customer", "")
	resp, body := get(t, fx.app, "/shop", customer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Margherita")
	assert.Contains(t, body, "90.00 EGP")
	assert.NotContains(t, body, "Seafood Special")

	// Unknown category: empty catalog with a placeholder, not an error.
	resp, body = get(t, fx.app, "/shop?category=Sushi", customer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "Margherita")
	assert.Contains(t, body, "No products found in this category.")
}

func TestCheckoutOnEmptyCartPlacesNoOrder(t *testing.T) {
	fx := newWebFixture(t)
	customer := sessionCookieFor(t, "customer-2", "Ahmed Hassan", "customer", "")

	resp := postForm(t, fx.app, "/checkout", url.Values{"payment_method": {"Cash"}}, customer)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/shop", resp.Header.Get("Location"))
	assert.Zero(t, fx.api.ordersPlaced)
}

func TestCheckoutPlacesOrderFromCart(t *testing.T) {
	fx := newWebFixture(t)
	fx.api.carts["customer-2"] = &dto.CartResponse{
		ID:         "cart-1",
		TotalPrice: decimal.NewFromInt(105),
		Products: []dto.ProductResponse{
			{ID: "p1", Name: "Margherita", Price: decimal.NewFromInt(90)},
			{ID: "p2", Name: "Coca Cola", Price: decimal.NewFromInt(15)},
		},
	}
	customer := sessionCookieFor(t, "customer-2", "Ahmed Hassan", "customer", "")

	resp := postForm(t, fx.app, "/checkout", url.Values{"payment_method": {"Cash"}}, customer)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, fx.api.ordersPlaced)

	f := decodeFlash(t, resp)
	assert.Equal(t, flash.KindSuccess, f.Kind)
	assert.Equal(t, "Order #order-99 placed!", f.Message)
}

func TestAdminApprovalMovesProductOutOfPending(t *testing.T) {
	fx := newWebFixture(t)
	fx.api.products = []dto.ProductResponse{
		{ID: "p2", Name: "Seafood Special", Category: "Pizza", Price: decimal.NewFromInt(150), Status: "pending", OwnerName: "Pizza King"},
	}
	admin := sessionCookieFor(t, "admin-1", "Mohamed Salah", "admin", "")

	_, body := get(t, fx.app, "/admin", admin)
	assert.Contains(t, body, "Seafood Special")
	assert.NotContains(t, body, "No pending products.")

	resp := postForm(t, fx.app, "/admin/products/p2/approve", nil, admin)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = get(t, fx.app, "/admin", admin)
	assert.Contains(t, body, "No pending products.")
	// Still listed among all products, now approved.
	assert.Contains(t, body, "Seafood Special")
	assert.Contains(t, body, "Approved")
}

func TestAdminCreateAccountUsesAPIStatusCasing(t *testing.T) {
	fx := newWebFixture(t)
	admin := sessionCookieFor(t, "admin-1", "Mohamed Salah", "admin", "")

	resp := postForm(t, fx.app, "/admin/accounts", url.Values{
		"name":     {"Second Admin"},
		"email":    {"second@email.com"},
		"password": {"123456"},
		"role":     {"admin"},
	}, admin)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	require.Len(t, fx.api.adminsCreated, 1)
	assert.Equal(t, "Second Admin", fx.api.adminsCreated[0].Name)
	// Same casing the signup endpoints default to, so the users table
	// renders one spelling regardless of which path created the account.
	assert.Equal(t, "Active", fx.api.adminsCreated[0].Status)
}

func TestProviderSeesOwnPendingProduct(t *testing.T) {
	fx := newWebFixture(t)
	fx.api.products = []dto.ProductResponse{
		{ID: "p2", Name: "Seafood Special", Category: "Pizza", Price: decimal.NewFromInt(150), Status: "pending", ProviderID: "provider-5"},
		{ID: "p3", Name: "Classic Burger", Category: "Burgers", Price: decimal.NewFromInt(60), Status: "approved", ProviderID: "provider-6"},
	}
	provider := sessionCookieFor(t, "provider-5", "Pizza King", "serviceOfferor", "Cairo")

	resp, body := get(t, fx.app, "/provider", provider)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Seafood Special")
	assert.Contains(t, body, "Pending")
	// Another provider's product never shows on this dashboard.
	assert.NotContains(t, body, "Classic Burger")
}

func TestCourierBoardSkipsFinishedOrders(t *testing.T) {
	fx := newWebFixture(t)
	fx.api.orders = []dto.OrderResponse{
		{ID: "aaaa1001-pending", Status: "pending", CustomerID: "customer-2", TotalPrice: decimal.NewFromInt(105)},
		{ID: "bbbb2002-done", Status: "delivered", CustomerID: "customer-3", TotalPrice: decimal.NewFromInt(60)},
	}
	courier := sessionCookieFor(t, "courier-7", "Nour El-Din", "courier", "Downtown Cairo")

	resp, body := get(t, fx.app, "/courier", courier)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "aaaa1001")
	assert.Contains(t, body, "Downtown Cairo")
	assert.NotContains(t, body, "bbbb2002")
	assert.NotContains(t, body, "Delivered")
}

func TestCourierAreaUpdate(t *testing.T) {
	fx := newWebFixture(t)
	courier := sessionCookieFor(t, "courier-7", "Nour El-Din", "courier", "Downtown Cairo")

	// Empty input is a no-op, mirroring the area form's behavior.
	resp := postForm(t, fx.app, "/courier/area", url.Values{"area": {""}}, courier)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, fx.api.areaUpdates)

	resp = postForm(t, fx.app, "/courier/area", url.Values{"area": {"Maadi"}}, courier)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"Maadi"}, fx.api.areaUpdates)

	// The session cookie is reissued so the new area renders immediately.
	sess := findCookie(resp, "qd_session")
	require.NotNil(t, sess)
	claims, err := session.Parse(testSecret, sess.Value)
	require.NoError(t, err)
	assert.Equal(t, "Maadi", claims.Area)
}

func TestLogoutDropsSession(t *testing.T) {
	fx := newWebFixture(t)
	customer := sessionCookieFor(t, "customer-2", "Ahmed Hassan", "customer", "")

	resp := postForm(t, fx.app, "/logout", nil, customer)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	sess := findCookie(resp, "qd_session")
	require.NotNil(t, sess)
	assert.Empty(t, sess.Value)
	assert.True(t, sess.Expires.Before(time.Now()), "deletion cookie must be expired")
}
