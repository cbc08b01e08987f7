package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quickdeliver/quickdeliver/internal/application/dto"
	"github.com/quickdeliver/quickdeliver/internal/application/usecase"
	"github.com/quickdeliver/quickdeliver/internal/domain"
)

// CartHandler serves per-customer shopping carts.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler builds the handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View godoc
// @Summary      View a customer's cart, creating it on first access
// @Tags         carts
// @Produce      json
// @Param        id   path  string  true  "Customer ID"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Add one occurrence of a product to the cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Customer ID"
// @Param        body  body  dto.CartItemRequest  true  "Product to add"
// @Success      200   {object}  dto.CartMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/cart/add [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.AddProduct(c.Params("id"), in.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Customer not found"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Remove one occurrence of a product from the cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Customer ID"
// @Param        body  body  dto.CartItemRequest  true  "Product to remove"
// @Success      200   {object}  dto.CartMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/cart/remove [post]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.RemoveProduct(c.Params("id"), in.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Customer not found"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Cart not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
