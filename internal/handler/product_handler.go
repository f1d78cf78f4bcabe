package handler

import (
	"strconv"

	"camrent-backend/internal/model"
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// GetProducts returns one catalog page, optionally filtered by ?search=.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	search := c.Query("search")

	result, err := h.service.GetPage(page, search)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid product id"})
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.GetByCategory(c.Params("category"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

func (h *ProductHandler) GetStockDetails(c *fiber.Ctx) error {
	products, err := h.service.GetStockDetails()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": products})
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.Create(&product); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "product_id": product.ID})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid product id"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.Update(id, &product); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid product id"})
	}

	if err := h.service.Delete(id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
