package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// UploadImage stores a product or ID-card image and returns the filename used
// as the stable reference in products and transactions.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "image file is required"})
	}

	if file.Size > maxUploadBytes {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "image exceeds 5MB limit"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "only jpg, jpeg, png and gif images are allowed"})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return errorJSON(c, err)
	}

	// filepath.Base strips any path components a client might smuggle in.
	filename := filepath.Base(file.Filename)
	if err := c.SaveFile(file, fmt.Sprintf("%s/%s", h.uploadDir, filename)); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "Image uploaded", "filename": filename})
}
