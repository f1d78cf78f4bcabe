package handler

import (
	"strconv"

	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	checkout service.CheckoutService
	txs      service.TransactionService
}

func NewTransactionHandler(checkout service.CheckoutService, txs service.TransactionService) *TransactionHandler {
	return &TransactionHandler{checkout: checkout, txs: txs}
}

// Checkout runs the order workflow for the submitted cart selection.
// POST /products/cart/payment
func (h *TransactionHandler) Checkout(c *fiber.Ctx) error {
	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	result, err := h.checkout.Checkout(&req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"message":        "Checkout completed",
		"transaction_id": result.TransactionID,
		"total":          result.Total,
		"end_date":       result.EndDate,
	})
}

// SubmitPayment records payment proof for a committed transaction.
// POST /products/transaction/payment
func (h *TransactionHandler) SubmitPayment(c *fiber.Ctx) error {
	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	paymentID, err := h.checkout.SubmitPayment(&req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"message":    "Payment recorded and transaction marked paid",
		"payment_id": paymentID,
	})
}

// UpdateStatus moves a transaction along the fulfillment states.
// PUT /products/transaction/status/:id
func (h *TransactionHandler) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid JSON"})
	}

	if err := h.checkout.UpdateStatus(c.Params("id"), body.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction status updated successfully"})
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.txs.GetPage(page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	tx, err := h.txs.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "transaction": tx})
}

// GetStats reports the ledger aggregate for the admin dashboard.
func (h *TransactionHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.txs.GetStats()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// GetUserTransactions lists one user's transactions, newest first.
// GET /users/transaction/:id
func (h *TransactionHandler) GetUserTransactions(c *fiber.Ctx) error {
	userID, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid_input", "message": "invalid user id"})
	}

	txs, err := h.txs.GetByUser(userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(txs)
}
