package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/application/usecase"
	"github.com/quickdeliver/quickdeliver/internal/domain"
)

// AccountHandler serves account listing and role-specific updates.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler builds the handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// ListUsers godoc
// @Summary      List every account across all roles
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/users [get]
func (h *AccountHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// UpdateUser godoc
// @Summary      Update an account regardless of role
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Account ID"
// @Param        body  body  dto.UpdateAccountRequest  true  "Fields to update"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *AccountHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetCustomer godoc
// @Summary      Get a customer by ID
// @Tags         accounts
// @Produce      json
// @Param        id   path  string  true  "Customer ID"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *AccountHandler) GetCustomer(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomer(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// ListProviders godoc
// @Summary      List service partner accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/providers [get]
func (h *AccountHandler) ListProviders(c *fiber.Ctx) error {
	out, err := h.uc.ListProviders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// UpdateProvider godoc
// @Summary      Update a service partner account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Provider ID"
// @Param        body  body  dto.UpdateAccountRequest  true  "Fields to update"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [put]
func (h *AccountHandler) UpdateProvider(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.UpdateProvider(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Provider not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// UpdateCourierArea godoc
// @Summary      Change the area a courier serves
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Courier ID"
// @Param        body  body  dto.UpdateAreaRequest  true  "New area"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/couriers/{id}/area [put]
func (h *AccountHandler) UpdateCourierArea(c *fiber.Ctx) error {
	var in dto.UpdateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.UpdateCourierArea(c.Params("id"), in.Area)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Courier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
