// Package client is a typed HTTP client for the QuickDeliver API. The web
// frontend is its only consumer; it never interprets business rules itself,
// it just surfaces what the API returns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
)

// APIError carries the status code and the error message the API returned.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the QuickDeliver API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL (e.g. "http://localhost:8080/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates by email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	err := c.do(ctx, http.MethodPost, "/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new customer account.
func (c *Client) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPost, "/customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdmin creates an admin account.
func (c *Client) CreateAdmin(ctx context.Context, in dto.CreateAdminRequest) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPost, "/admins", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProvider creates a service partner account.
func (c *Client) CreateProvider(ctx context.Context, in dto.CreateProviderRequest) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPost, "/providers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourier creates a courier account.
func (c *Client) CreateCourier(ctx context.Context, in dto.CreateCourierRequest) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPost, "/couriers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists every account across all roles.
func (c *Client) Users(ctx context.Context) ([]dto.AccountResponse, error) {
	var out []dto.AccountResponse
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser updates an account regardless of role.
func (c *Client) UpdateUser(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Customer fetches a customer by id.
func (c *Client) Customer(ctx context.Context, id string) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Providers lists service partner accounts.
func (c *Client) Providers(ctx context.Context) ([]dto.AccountResponse, error) {
	var out []dto.AccountResponse
	if err := c.do(ctx, http.MethodGet, "/providers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCourierArea changes the area a courier serves.
func (c *Client) UpdateCourierArea(ctx context.Context, id, area string) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := c.do(ctx, http.MethodPut, "/couriers/"+id+"/area", dto.UpdateAreaRequest{Area: area}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Products lists the whole catalog, pending and approved alike.
func (c *Client) Products(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct registers a product under a provider.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct applies name/price/category/details changes.
func (c *Client) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/products/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveProduct moves a product to the approved state.
func (c *Client) ApproveProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/products/"+id+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

// Cart fetches the customer's cart. A 404 renders as an empty cart rather
// than an error; the view never breaks on a cart that does not exist yet.
func (c *Client) Cart(ctx context.Context, customerID string) (*dto.CartResponse, error) {
	var out dto.CartResponse
	err := c.do(ctx, http.MethodGet, "/customers/"+customerID+"/cart", nil, &out)
	if err != nil {
		if IsNotFound(err) {
			return &dto.CartResponse{}, nil
		}
		return nil, err
	}
	return &out, nil
}

// AddToCart adds one occurrence of the product to the customer's cart.
func (c *Client) AddToCart(ctx context.Context, customerID, productID string) error {
	return c.do(ctx, http.MethodPost, "/customers/"+customerID+"/cart/add", dto.CartItemRequest{ProductID: productID}, nil)
}

// RemoveFromCart removes one occurrence of the product from the cart.
func (c *Client) RemoveFromCart(ctx context.Context, customerID, productID string) error {
	return c.do(ctx, http.MethodPost, "/customers/"+customerID+"/cart/remove", dto.CartItemRequest{ProductID: productID}, nil)
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	var out dto.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders lists every order (the courier board).
func (c *Client) Orders(ctx context.Context) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomerOrders lists a customer's own orders.
func (c *Client) CustomerOrders(ctx context.Context, customerID string) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/customers/"+customerID+"/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrder applies a status transition and/or a courier assignment.
func (c *Client) UpdateOrder(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodPut, "/orders/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError surfaces the API's error field when present, otherwise a
// generic message with the status code.
func (c *Client) decodeError(resp *http.Response) error {
	var payload dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: "Something went wrong"}
}
