package handler

import (
	"camrent-backend/internal/model"
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid user id"})
	}

	user, err := h.service.GetByID(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	user, err := h.service.Create(&req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "User created successfully", "user_id": user.ID})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid user id"})
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.Update(id, &req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid user id"})
	}

	if err := h.service.Delete(id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *UserHandler) GetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetReviews()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(reviews)
}

func (h *UserHandler) CreateReview(c *fiber.Ctx) error {
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.CreateReview(&review); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Review created successfully", "review_id": review.ID})
}

func (h *UserHandler) CreateContact(c *fiber.Ctx) error {
	var contact model.Contact
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.service.CreateContact(&contact); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Successfully sent!", "contact_id": contact.ID})
}
