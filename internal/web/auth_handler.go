package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/client"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
)

// Dispatch routes the signed-in visitor to the one section their role owns.
// An unknown role is not fatal: the session is dropped and the visitor lands
// back on the login page with an explanation.
func (s *Server) Dispatch(c *fiber.Ctx) error {
	claims := s.currentSession(c)
	if claims == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	switch claims.Role {
	case "customer":
		return c.Redirect("/shop", fiber.StatusSeeOther)
	case "admin":
		return c.Redirect("/admin", fiber.StatusSeeOther)
	case "serviceOfferor":
		return c.Redirect("/provider", fiber.StatusSeeOther)
	case "courier":
		return c.Redirect("/courier", fiber.StatusSeeOther)
	default:
		s.clearSessionCookie(c)
		s.setFlash(c, flash.KindError, "Unknown account role, please sign in again")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// LoginPage renders the login/signup tabs. ?tab=signup preselects signup.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	if s.currentSession(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	tab := c.Query("tab", "login")
	if tab != "signup" {
		tab = "login"
	}
	return c.Render("templates/login", s.viewData(c, fiber.Map{
		"Title": "Sign in",
		"Tab":   tab,
	}))
}

// Login authenticates against the API and opens a session.
func (s *Server) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	account, err := s.api.Login(c.UserContext(), email, password)
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err := s.setSessionCookie(c, account.ID, account.Name, account.Role, account.Area); err != nil {
		s.log.Error().Err(err).Msg("issue session cookie")
		s.setFlash(c, flash.KindError, "Something went wrong")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	s.setFlash(c, flash.KindSuccess, "Welcome back, "+account.Name+"!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Signup registers a customer account and signs it in.
func (s *Server) Signup(c *fiber.Ctx) error {
	in := dto.SignupRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Address:  c.FormValue("address"),
		Phone:    c.FormValue("phone"),
	}
	account, err := s.api.Signup(c.UserContext(), in)
	if err != nil {
		s.setFlash(c, flash.KindError, apiMessage(err))
		return c.Redirect("/login?tab=signup", fiber.StatusSeeOther)
	}
	if err := s.setSessionCookie(c, account.ID, account.Name, account.Role, account.Area); err != nil {
		s.log.Error().Err(err).Msg("issue session cookie")
		s.setFlash(c, flash.KindError, "Something went wrong")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	s.setFlash(c, flash.KindSuccess, "Account created, welcome "+account.Name+"!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout clears the session cookie. No API call is involved; the backend
// holds no session state.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSessionCookie(c)
	s.setFlash(c, flash.KindInfo, "Signed out")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// apiMessage extracts the API's error message for display; transport-level
// failures collapse to a generic line.
func apiMessage(err error) string {
	if apiErr, ok := err.(*client.APIError); ok {
		return apiErr.Message
	}
	return "Something went wrong"
}
