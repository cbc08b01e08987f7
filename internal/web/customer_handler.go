package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
)

// Shop renders the customer storefront: approved catalog under the category
// filter, the grouped cart and the customer's order history. Everything is
// fetched fresh; the page holds no state beyond the filter in the URL.
func (s *Server) Shop(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	category := c.Query("category", "all")

	products, err := s.api.Products(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	cart, err := s.api.Cart(c.UserContext(), claims.Subject)
	if err != nil {
		return s.renderError(c, err)
	}
	orders, err := s.api.CustomerOrders(c.UserContext(), claims.Subject)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Render("templates/shop", s.viewData(c, fiber.Map{
		"Title":      "Shop",
		"Category":   category,
		"Categories": Categories,
		"Catalog":    FilterCatalog(products, category),
		"Cart":       GroupCart(cart),
		"Orders":     OrderCards(orders),
	}))
}

// CartAdd puts one occurrence of a product into the cart.
func (s *Server) CartAdd(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	productID := c.FormValue("product_id")
	if err := s.api.AddToCart(c.UserContext(), claims.Subject, productID); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Added to cart")
	}
	return s.backToShop(c)
}

// CartRemove takes one occurrence of a product out of the cart.
func (s *Server) CartRemove(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	productID := c.FormValue("product_id")
	if err := s.api.RemoveFromCart(c.UserContext(), claims.Subject, productID); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindInfo, "Removed from cart")
	}
	return s.backToShop(c)
}

// CheckoutPage renders the order review, mirroring the cart's grouped lines
// and server total.
func (s *Server) CheckoutPage(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	cart, err := s.api.Cart(c.UserContext(), claims.Subject)
	if err != nil {
		return s.renderError(c, err)
	}
	view := GroupCart(cart)
	if view.Count == 0 {
		return s.backToShop(c)
	}
	return c.Render("templates/checkout", s.viewData(c, fiber.Map{
		"Title": "Checkout",
		"Cart":  view,
	}))
}

// Checkout places the order. The cart is re-fetched first: if it emptied
// between review and submit, the handler just goes back to the shop without
// calling the order endpoint.
func (s *Server) Checkout(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	cart, err := s.api.Cart(c.UserContext(), claims.Subject)
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return s.backToShop(c)
	}
	view := GroupCart(cart)
	if view.Count == 0 {
		return s.backToShop(c)
	}
	payment := c.FormValue("payment_method")
	if payment == "" {
		payment = "Cash"
	}
	order, err := s.api.CreateOrder(c.UserContext(), dto.CreateOrderRequest{
		CustomerID:    claims.Subject,
		ProductIDs:    view.ProductIDs,
		PaymentMethod: payment,
	})
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return s.backToShop(c)
	}
	s.setFlash(c, flash.KindSuccess, "Order #"+ShortID(order.ID)+" placed!")
	return s.backToShop(c)
}

func (s *Server) backToShop(c *fiber.Ctx) error {
	target := "/shop"
	if category := c.Query("category"); category != "" {
		target += "?category=" + category
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// renderError is the fallback page for API fetch failures on a GET render.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	s.log.Error().Err(err).Str("path", c.Path()).Msg("api fetch failed")
	return c.Status(fiber.StatusBadGateway).Render("templates/error", s.viewData(c, fiber.Map{
		"Title":   "Something went wrong",
		"Message": apiMessage(err),
	}))
}
