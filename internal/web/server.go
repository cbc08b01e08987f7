// Package web is the server-rendered frontend: one role section per session,
// re-fetched from the API before every render. It owns no business rules and
// no authoritative state — only the session cookie, the category filter and
// the selected product reference travel with the browser.
package web

import (
	"embed"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/quickdeliver/quickdeliver/internal/client"
	"github.com/quickdeliver/quickdeliver/internal/web/flash"
	"github.com/quickdeliver/quickdeliver/pkg/config"
	"github.com/quickdeliver/quickdeliver/pkg/logger"
	"github.com/quickdeliver/quickdeliver/pkg/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	sessionCookie = "qd_session"
	flashCookie   = "qd_flash"

	localsSession = "session"
	localsFlash   = "flash"
)

// Server wires the API client, cookie codecs and view handlers. All mutable
// per-visitor state lives in cookies, never on the struct.
type Server struct {
	api   *client.Client
	codec *flash.Codec
	log   *logger.Logger
	sess  config.SessionConfig
}

// NewServer builds the frontend server.
func NewServer(api *client.Client, log *logger.Logger, sess config.SessionConfig) *Server {
	return &Server{
		api:   api,
		codec: flash.NewCodec([]byte(sess.Secret), flashCookie, false),
		log:   log,
		sess:  sess,
	}
}

// App builds the Fiber application with routes and embedded templates.
func (s *Server) App(appName string) *fiber.App {
	engine := html.NewFileSystem(http.FS(templatesFS), ".html")
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Views:        engine,
		ViewsLayout:  "templates/layout",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 20,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(s.loadSession)
	app.Use(s.loadFlash)

	app.Get("/", s.Dispatch)
	app.Get("/login", s.LoginPage)
	app.Post("/login", s.Login)
	app.Post("/signup", s.Signup)
	app.Post("/logout", s.Logout)

	// Customer. Registered per route so the role gate only guards the
	// customer paths themselves.
	asCustomer := s.requireRole("customer")
	app.Get("/shop", asCustomer, s.Shop)
	app.Post("/cart/add", asCustomer, s.CartAdd)
	app.Post("/cart/remove", asCustomer, s.CartRemove)
	app.Get("/checkout", asCustomer, s.CheckoutPage)
	app.Post("/checkout", asCustomer, s.Checkout)

	// Admin
	admin := app.Group("/admin", s.requireRole("admin"))
	admin.Get("/", s.AdminDashboard)
	admin.Post("/accounts", s.AdminCreateAccount)
	admin.Post("/products", s.AdminCreateProduct)
	admin.Post("/products/:id/update", s.AdminUpdateProduct)
	admin.Post("/products/:id/approve", s.AdminApproveProduct)
	admin.Get("/products/:id/delete", s.AdminDeleteProductPage)
	admin.Post("/products/:id/delete", s.AdminDeleteProduct)
	admin.Post("/users/:id/edit", s.AdminEditUser)

	// Provider
	provider := app.Group("/provider", s.requireRole("serviceOfferor"))
	provider.Get("/", s.ProviderDashboard)
	provider.Post("/products", s.ProviderCreateProduct)
	provider.Post("/products/:id/update", s.ProviderUpdateProduct)
	provider.Get("/products/:id/delete", s.ProviderDeleteProductPage)
	provider.Post("/products/:id/delete", s.ProviderDeleteProduct)

	// Courier
	courier := app.Group("/courier", s.requireRole("courier"))
	courier.Get("/", s.CourierDashboard)
	courier.Post("/area", s.CourierUpdateArea)
	courier.Post("/orders/:id/status", s.CourierUpdateOrder)

	return app
}

// loadSession parses the session cookie into request locals. An invalid or
// expired cookie is dropped silently; the visitor is simply signed out.
func (s *Server) loadSession(c *fiber.Ctx) error {
	if raw := c.Cookies(sessionCookie); raw != "" {
		if claims, err := session.Parse(s.sess.Secret, raw); err == nil {
			c.Locals(localsSession, claims)
		} else {
			s.clearSessionCookie(c)
		}
	}
	return c.Next()
}

// loadFlash reads the notification cookie, exposes it to the render and
// deletes it, valid or not, so it shows exactly once.
func (s *Server) loadFlash(c *fiber.Ctx) error {
	if raw := c.Cookies(flashCookie); raw != "" {
		if f, err := s.codec.Decode(raw); err == nil {
			c.Locals(localsFlash, f)
		}
		c.Cookie(&fiber.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Next()
}

// requireRole redirects to the login page when the session is missing or
// belongs to a different role.
func (s *Server) requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := s.currentSession(c)
		if claims == nil || claims.Role != role {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

func (s *Server) currentSession(c *fiber.Ctx) *session.Claims {
	if v, ok := c.Locals(localsSession).(*session.Claims); ok {
		return v
	}
	return nil
}

func (s *Server) currentFlash(c *fiber.Ctx) *flash.Flash {
	if v, ok := c.Locals(localsFlash).(*flash.Flash); ok {
		return v
	}
	return nil
}

// setFlash writes the single notification slot; a second call before the
// next render overwrites the first.
func (s *Server) setFlash(c *fiber.Ctx, kind, message string) {
	val, err := s.codec.Encode(flash.Flash{Kind: kind, Message: message})
	if err != nil {
		s.log.Error().Err(err).Msg("encode flash cookie")
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    val,
		Path:     "/",
		MaxAge:   s.codec.CookieMaxAge(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// setSessionCookie issues the signed session as a browser-session cookie
// (no Max-Age), so it does not outlive the browser.
func (s *Server) setSessionCookie(c *fiber.Ctx, accountID, name, role, area string) error {
	token, err := session.Generate(s.sess.Secret, accountID, name, role, area, s.sess.Issuer, s.sess.TTLMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// viewData assembles the bindings every template expects: session identity
// and the pending notification.
func (s *Server) viewData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
	data := fiber.Map{}
	if claims := s.currentSession(c); claims != nil {
		data["UserName"] = claims.Name
		data["UserRole"] = claims.Role
		data["UserRoleDisplay"] = RoleDisplay(claims.Role)
	}
	if f := s.currentFlash(c); f != nil {
		data["Flash"] = f
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
