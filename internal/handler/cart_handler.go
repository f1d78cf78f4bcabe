package handler

import (
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req service.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.AddItem(&req); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product added to cart"})
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid user id"})
	}

	items, err := h.service.GetByUser(userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(items)
}

func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	cartID, err := parseID(c.Params("cart_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid cart id"})
	}

	if err := h.service.Remove(cartID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

type checkoutSelectionRequest struct {
	UserID           uint                     `json:"user_id"`
	SelectedProducts []map[string]interface{} `json:"selected_products"`
}

// CheckoutSelection validates the picked cart lines and hands them back for
// the payment step. No state changes here.
func (h *CartHandler) CheckoutSelection(c *fiber.Ctx) error {
	var req checkoutSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}
	if req.UserID == 0 || len(req.SelectedProducts) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "no products selected for checkout"})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"user_id":           req.UserID,
		"selected_products": req.SelectedProducts,
	})
}
