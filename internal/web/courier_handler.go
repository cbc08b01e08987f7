package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
)

// CourierDashboard shows the courier's delivery area and every order still
// in flight, drawn from the global order list.
func (s *Server) CourierDashboard(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	orders, err := s.api.Orders(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Render("templates/courier", s.viewData(c, fiber.Map{
		"Title":  "Deliveries",
		"Area":   claims.Area,
		"Orders": ActiveOrders(orders),
	}))
}

// CourierUpdateArea changes the courier's delivery area. An empty input is a
// no-op. The session cookie is reissued so the new area shows without a
// fresh login.
func (s *Server) CourierUpdateArea(c *fiber.Ctx) error {
	area := c.FormValue("area")
	if area == "" {
		return c.Redirect("/courier", fiber.StatusSeeOther)
	}
	claims := s.currentSession(c)
	if _, err := s.api.UpdateCourierArea(c.UserContext(), claims.Subject, area); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return c.Redirect("/courier", fiber.StatusSeeOther)
	}
	if err := s.setSessionCookie(c, claims.Subject, claims.Name, claims.Role, area); err != nil {
		s.log.Error().Err(err).Msg("reissue session cookie")
	}
	s.setFlash(c, flash.KindSuccess, "Delivery area updated")
	return c.Redirect("/courier", fiber.StatusSeeOther)
}

// CourierUpdateOrder marks an order on-the-way or delivered.
func (s *Server) CourierUpdateOrder(c *fiber.Ctx) error {
	status := c.FormValue("status")
	if status != "on-the-way" && status != "delivered" {
		s.setFlash(c, flash.KindError, "Unknown order status")
		return c.Redirect("/courier", fiber.StatusSeeOther)
	}
	if _, err := s.api.UpdateOrder(c.UserContext(), c.Params("id"), dto.UpdateOrderRequest{Status: &status}); err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
	} else {
		s.setFlash(c, flash.KindSuccess, "Order marked as "+status)
	}
	return c.Redirect("/courier", fiber.StatusSeeOther)
}
