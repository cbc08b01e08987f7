package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/client"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
)

// AdminDashboard renders pending products, the full catalog, the users table
// and the account/product forms. ?edit=id preloads the product form from the
// freshly fetched snapshot; the reference clears on the next redirect.
func (s *Server) AdminDashboard(c *fiber.Ctx) error {
	users, err := s.api.Users(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	products, err := s.api.Products(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}

	data := fiber.Map{
		"Title":      "Admin",
		"Users":      AccountRows(users),
		"Products":   ProductRows(products),
		"Pending":    PendingProducts(products),
		"Categories": Categories,
	}
	if editID := c.Query("edit"); editID != "" {
		if p := FindProduct(products, editID); p != nil {
			data["Editing"] = p
		}
	}
	return c.Render("templates/admin", s.viewData(c, data))
}

// AdminCreateAccount creates an account of the chosen role with the fixed
// role defaults attached; the defaults are not user-editable.
func (s *Server) AdminCreateAccount(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	role := c.FormValue("role")

	if role == "" {
		s.setFlash(c, flash.KindError, "Please select a role")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	var err error
	switch role {
	case "admin":
		_, err = s.api.CreateAdmin(c.UserContext(), dto.CreateAdminRequest{
			Name: name, Email: email, Password: password, Status: "Active",
		})
	case "serviceOfferor":
		_, err = s.api.CreateProvider(c.UserContext(), dto.CreateProviderRequest{
			Name: name, Email: email, Password: password, ServiceType: "General", Area: "Cairo",
		})
	case "courier":
		_, err = s.api.CreateCourier(c.UserContext(), dto.CreateCourierRequest{
			Name: name, Email: email, Password: password, Vehicle: "Scooter", Area: "Cairo",
		})
	default:
		s.setFlash(c, flash.KindError, "Please select a role")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Created new "+role+" successfully!")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// AdminCreateProduct adds a catalog product. Admins own no products, so the
// first provider on the user list is assigned as owner; without one the
// operation fails up front.
func (s *Server) AdminCreateProduct(c *fiber.Ctx) error {
	users, err := s.api.Users(c.UserContext())
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	var providerID string
	for _, u := range users {
		if u.Role == "serviceOfferor" {
			providerID = u.ID
			break
		}
	}
	if providerID == "" {
		s.setFlash(c, flash.KindError, "No Service Provider available to assign product to.")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	price, perr := decimal.NewFromString(c.FormValue("price"))
	if perr != nil {
		s.setFlash(c, flash.KindError, "Invalid price")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	_, err = s.api.CreateProduct(c.UserContext(), dto.CreateProductRequest{
		Name:       c.FormValue("name"),
		Price:      price,
		Category:   c.FormValue("category"),
		ProviderID: providerID,
		Status:     "approved",
		Details:    "Admin added",
		Weight:     1.0,
	})
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product added successfully")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// AdminUpdateProduct commits name/price/category from the edit form.
func (s *Server) AdminUpdateProduct(c *fiber.Ctx) error {
	if err := s.updateProductFromForm(c); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product updated")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// AdminApproveProduct moves a pending product into the storefront.
func (s *Server) AdminApproveProduct(c *fiber.Ctx) error {
	if _, err := s.api.ApproveProduct(c.UserContext(), c.Params("id")); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product approved")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// AdminDeleteProductPage renders the delete confirmation.
func (s *Server) AdminDeleteProductPage(c *fiber.Ctx) error {
	products, err := s.api.Products(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	p := FindProduct(products, c.Params("id"))
	if p == nil {
		s.setFlash(c, flash.KindError, "Product not found")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return c.Render("templates/confirm_delete", s.viewData(c, fiber.Map{
		"Title":   "Delete product",
		"Product": p,
		"Action":  "/admin/products/" + p.ID + "/delete",
		"Cancel":  "/admin",
	}))
}

// AdminDeleteProduct removes the product after confirmation.
func (s *Server) AdminDeleteProduct(c *fiber.Ctx) error {
	if err := s.api.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Product deleted")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// AdminEditUser is still a placeholder action.
func (s *Server) AdminEditUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if len(id) > 5 {
		id = id[:5]
	}
	s.setFlash(c, flash.KindInfo, "Edit feature for user "+id+"... coming soon!")
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// updateProductFromForm sends the name/price/category edit shared by the
// admin and provider forms.
func (s *Server) updateProductFromForm(c *fiber.Ctx) error {
	name := c.FormValue("name")
	category := c.FormValue("category")
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return &client.APIError{StatusCode: fiber.StatusBadRequest, Message: "Invalid price"}
	}
	_, err = s.api.UpdateProduct(c.UserContext(), c.Params("id"), dto.UpdateProductRequest{
		Name:     &name,
		Price:    &price,
		Category: &category,
	})
	return err
}
