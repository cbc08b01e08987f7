package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
)

// ProviderDashboard renders the service partner's own products and the
// product form. ?edit=id preloads the form, same as the admin view, but the
// scope is always the session's provider id.
func (s *Server) ProviderDashboard(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	products, err := s.api.Products(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	own := ProductsByProvider(products, claims.Subject)

	data := fiber.Map{
		"Title":      "My Products",
		"Products":   ProductRows(own),
		"Categories": Categories,
	}
	if editID := c.Query("edit"); editID != "" {
		if p := FindProduct(own, editID); p != nil {
			data["Editing"] = p
		}
	}
	return c.Render("templates/provider", s.viewData(c, data))
}

// ProviderCreateProduct submits a product under the session's provider id.
// It always enters as pending; providers cannot set approval.
func (s *Server) ProviderCreateProduct(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	price, perr := decimal.NewFromString(c.FormValue("price"))
	if perr != nil {
		s.setFlash(c, flash.KindError, "Invalid price")
		return c.Redirect("/provider", fiber.StatusSeeOther)
	}
	_, err := s.api.CreateProduct(c.UserContext(), dto.CreateProductRequest{
		Name:       c.FormValue("name"),
		Price:      price,
		Category:   c.FormValue("category"),
		ProviderID: claims.Subject,
		Status:     "pending",
		Details:    "Freshly made",
		Weight:     0.5,
	})
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product added! Waiting for admin approval.")
	}
	return c.Redirect("/provider", fiber.StatusSeeOther)
}

// ProviderUpdateProduct commits name/price/category from the edit form.
func (s *Server) ProviderUpdateProduct(c *fiber.Ctx) error {
	if err := s.updateProductFromForm(c); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product updated")
	}
	return c.Redirect("/provider", fiber.StatusSeeOther)
}

// ProviderDeleteProductPage renders the delete confirmation for one of the
// provider's own products.
func (s *Server) ProviderDeleteProductPage(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	products, err := s.api.Products(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	p := FindProduct(ProductsByProvider(products, claims.Subject), c.Params("id"))
	if p == nil {
		s.setFlash(c, flash.KindError, "Product not found")
		return c.Redirect("/provider", fiber.StatusSeeOther)
	}
	return c.Render("templates/confirm_delete", s.viewData(c, fiber.Map{
		"Title":   "Delete product",
		"Product": p,
		"Action":  "/provider/products/" + p.ID + "/delete",
		"Cancel":  "/provider",
	}))
}

// ProviderDeleteProduct removes the product after confirmation.
func (s *Server) ProviderDeleteProduct(c *fiber.Ctx) error {
	if err := s.api.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product deleted")
	}
	return c.Redirect("/provider", fiber.StatusSeeOther)
}
