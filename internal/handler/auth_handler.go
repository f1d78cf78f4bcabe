package handler

import (
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles user authentication
// POST /users/signin
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "email and password are required"})
	}

	response, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(response)
}
