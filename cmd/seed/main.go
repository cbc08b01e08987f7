// Seeds demo accounts, products and a sample order through the repositories.
// Assumes the schema from internal/infrastructure/postgres/migrations is in
// place. Safe to run once against an empty database.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickdeliver/quickdeliver/internal/domain/entity"
	"github.com/quickdeliver/quickdeliver/internal/infrastructure/postgres"
	"github.com/quickdeliver/quickdeliver/pkg/config"
	"github.com/quickdeliver/quickdeliver/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	accounts := postgres.NewAccountRepository(pool)
	products := postgres.NewProductRepository(pool)
	carts := postgres.NewCartRepository(pool)
	orders := postgres.NewOrderRepository(pool)

	now := time.Now()
	account := func(id, name, email, password, role string) *entity.Account {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("hash password")
		}
		return &entity.Account{
			ID: id, Name: name, Email: email, PasswordHash: string(hash),
			Role: role, CreatedAt: now, UpdatedAt: now,
		}
	}

	admin := account("admin-1", "Mohamed Salah", "admin@email.com", "admin123", entity.RoleAdmin)
	admin.Status = "Active"

	customers := []*entity.Account{
		account("customer-2", "Ahmed Hassan", "ahmed@email.com", "123456", entity.RoleCustomer),
		account("customer-3", "Fatma Ali", "fatma@email.com", "123456", entity.RoleCustomer),
		account("customer-4", "Salma Mostafa", "salma@email.com", "123456", entity.RoleCustomer),
	}
	customers[0].Address, customers[0].Phone = "Cairo, Egypt", "01234567890"
	customers[1].Address, customers[1].Phone = "Giza, Egypt", "01234567891"
	customers[2].Address, customers[2].Phone = "Alexandria, Egypt", "01234567892"

	providers := []*entity.Account{
		account("provider-5", "Pizza King Restaurant", "pizza@email.com", "pizza123", entity.RoleServiceOfferor),
		account("provider-6", "Burger House Egypt", "burger@email.com", "burger123", entity.RoleServiceOfferor),
		account("provider-system", "QuickDeliver", "system@quickdeliver.com", "system123", entity.RoleServiceOfferor),
	}
	providers[0].ServiceType, providers[0].Area = "Restaurant", "Cairo"
	providers[1].ServiceType, providers[1].Area = "Restaurant", "Giza"
	providers[2].ServiceType, providers[2].Area = "System", "All"

	couriers := []*entity.Account{
		account("courier-7", "Nour El-Din", "nour@email.com", "nour123", entity.RoleCourier),
		account("courier-8", "Karim Mahmoud", "karim@email.com", "karim123", entity.RoleCourier),
	}
	couriers[0].Area, couriers[0].Vehicle, couriers[0].Status = "Downtown Cairo", "Scooter", "Active"
	couriers[1].Area, couriers[1].Vehicle, couriers[1].Status = "Maadi", "Scooter", "Active"

	all := append([]*entity.Account{admin}, customers...)
	all = append(all, providers...)
	all = append(all, couriers...)
	for _, a := range all {
		if err := accounts.Create(a); err != nil {
			log.Fatal().Err(err).Str("email", a.Email).Msg("create account")
		}
	}
	log.Info().Int("count", len(all)).Msg("accounts seeded")

	for _, c := range customers {
		if err := carts.Create(&entity.Cart{ID: "cart-" + c.ID, CustomerID: c.ID, Price: decimal.Zero}); err != nil {
			log.Fatal().Err(err).Str("customer", c.ID).Msg("create cart")
		}
	}

	product := func(id, name string, price float64, category, status, providerID, details string, weight float64) *entity.Product {
		return &entity.Product{
			ID: id, Name: name, Details: details, Weight: weight,
			Price: decimal.NewFromFloat(price), Category: category,
			Status: status, ProviderID: providerID,
			CreatedAt: now, UpdatedAt: now,
		}
	}

	catalog := []*entity.Product{
		product("product-1", "Margherita Pizza", 90, "Pizza", entity.ProductApproved, "provider-5", "Fresh tomato sauce, mozzarella, basil", 500),
		product("product-2", "Pepperoni Pizza", 120, "Pizza", entity.ProductApproved, "provider-5", "Pepperoni slices, mozzarella, tomato sauce", 550),
		product("product-3", "Vegetable Pizza", 85, "Pizza", entity.ProductApproved, "provider-5", "Mixed vegetables, mozzarella, tomato sauce", 500),
		product("product-4", "Classic Beef Burger", 75, "Burgers", entity.ProductApproved, "provider-6", "Beef patty, lettuce, tomato, cheese", 300),
		product("product-5", "Crispy Chicken Burger", 65, "Burgers", entity.ProductApproved, "provider-6", "Crispy chicken, lettuce, mayo", 280),
		product("product-6", "Fresh Orange Juice", 25, "Drinks", entity.ProductApproved, "provider-system", "Freshly squeezed orange juice", 250),
		product("product-7", "Coca Cola", 15, "Drinks", entity.ProductApproved, "provider-system", "330ml can", 330),
		product("product-8", "Kunafa Nabulsia", 45, "Desserts", entity.ProductApproved, "provider-system", "Traditional Middle Eastern dessert", 200),
		product("product-9", "Om Ali", 35, "Desserts", entity.ProductApproved, "provider-system", "Traditional Egyptian dessert", 180),
		product("product-10", "Seafood Pizza Special", 150, "Pizza", entity.ProductPending, "provider-5", "Shrimp, squid, mussels, mozzarella", 600),
	}
	for _, p := range catalog {
		if err := products.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", p.ID).Msg("create product")
		}
	}
	log.Info().Int("count", len(catalog)).Msg("products seeded")

	// Sample order for Ahmed Hassan: one Margherita plus two colas.
	order := &entity.Order{
		ID:            "order-1001",
		CustomerID:    "customer-2",
		Status:        entity.OrderPending,
		PaymentMethod: "Cash",
		OrderDate:     now,
		Products:      []entity.Product{*catalog[0], *catalog[6], *catalog[6]},
	}
	order.CalculatePrice()
	order.CalculateWeight()
	if err := orders.Create(order); err != nil {
		log.Fatal().Err(err).Msg("create sample order")
	}
	log.Info().Msg("sample order seeded")

	log.Info().
		Str("admin", "admin@email.com / admin123").
		Str("customer", "ahmed@email.com / 123456").
		Str("provider", "pizza@email.com / pizza123").
		Str("courier", "nour@email.com / nour123").
		Msg("database seeding completed")
}
