package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quickdeliver/quickdeliver/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *usecase.AuthUseCase
	AccountUC *usecase.AccountUseCase
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
	OrderUC   *usecase.OrderUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	accountHandler := NewAccountHandler(deps.AccountUC)
	productHandler := NewProductHandler(deps.ProductUC)
	cartHandler := NewCartHandler(deps.CartUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Auth and account creation
	api.Post("/login", authHandler.Login)
	api.Post("/admins", authHandler.CreateAdmin)
	api.Post("/providers", authHandler.CreateProvider)
	api.Post("/couriers", authHandler.CreateCourier)

	// Accounts
	api.Get("/users", accountHandler.ListUsers)
	api.Put("/users/:id", accountHandler.UpdateUser)
	api.Get("/providers", accountHandler.ListProviders)
	api.Put("/providers/:id", accountHandler.UpdateProvider)
	api.Put("/couriers/:id/area", accountHandler.UpdateCourierArea)

	// Customers: signup, profile, cart, orders
	customers := api.Group("/customers")
	customers.Post("/", authHandler.Signup)
	customers.Get("/:id", accountHandler.GetCustomer)
	customers.Get("/:id/cart", cartHandler.View)
	customers.Post("/:id/cart/add", cartHandler.AddItem)
	customers.Post("/:id/cart/remove", cartHandler.RemoveItem)
	customers.Get("/:id/orders", orderHandler.ListByCustomer)

	// Products
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/approve", productHandler.Approve)
	products.Delete("/:id", productHandler.Delete)

	// Orders
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Put("/:id", orderHandler.Update)
}
