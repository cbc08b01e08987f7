package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/client"
)

func TestClientSendsJSONAndDecodesResponse(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")

		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ahmed@email.com", in.Email)

		json.NewEncoder(w).Encode(dto.AccountResponse{
			ID: "c1", Name: "Ahmed Hassan", Role: "customer",
		})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	acc, err := api.Login(context.Background(), "ahmed@email.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "/login", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Ahmed Hassan", acc.Name)
	assert.Equal(t, "customer", acc.Role)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid email or password"})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	_, err := api.Login(context.Background(), "ahmed@email.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*client.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.False(t, client.IsNotFound(err))
}

func TestClientFallsBackOnUnreadableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	_, err := api.Users(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*client.APIError)
	require.True(t, ok)
	assert.Equal(t, "Something went wrong", apiErr.Message)
}

func TestClientTreatsMissingCartAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Cart not found"})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	cart, err := api.Cart(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
	assert.True(t, cart.TotalPrice.IsZero())
}

func TestClientIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Customer not found"})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	_, err := api.Customer(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}
