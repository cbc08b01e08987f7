package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/application/usecase"
	"github.com/quickdeliver/quickdeliver/internal/domain"
)

// AuthHandler handles login, signup and admin-side account creation.
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Authenticate an account by email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AccountResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Signup godoc
// @Summary      Register a new customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Customer data"
// @Success      201   {object}  dto.AccountResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, email and password are required"})
	}
	out, err := h.uc.SignupCustomer(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateAdmin godoc
// @Summary      Create an admin account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminRequest  true  "Admin data"
// @Success      201   {object}  dto.AccountResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admins [post]
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.CreateAdmin(in)
	if err != nil {
		return h.createError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateProvider godoc
// @Summary      Create a service partner account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProviderRequest  true  "Provider data"
// @Success      201   {object}  dto.AccountResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/providers [post]
func (h *AuthHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.CreateProvider(in)
	if err != nil {
		return h.createError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateCourier godoc
// @Summary      Create a courier account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCourierRequest  true  "Courier data"
// @Success      201   {object}  dto.AccountResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/couriers [post]
func (h *AuthHandler) CreateCourier(c *fiber.Ctx) error {
	var in dto.CreateCourierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.CreateCourier(in)
	if err != nil {
		return h.createError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) createError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Email already registered"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
