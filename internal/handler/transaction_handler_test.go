package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"camrent-backend/internal/repository"
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckoutService struct {
	checkoutResult *service.CheckoutResult
	checkoutErr    error
	paymentID      string
	paymentErr     error
	statusErr      error
}

func (s *stubCheckoutService) Checkout(req *service.CheckoutRequest) (*service.CheckoutResult, error) {
	return s.checkoutResult, s.checkoutErr
}

func (s *stubCheckoutService) SubmitPayment(req *service.PaymentRequest) (string, error) {
	return s.paymentID, s.paymentErr
}

func (s *stubCheckoutService) UpdateStatus(transactionID, status string) error {
	return s.statusErr
}

func newTestApp(stub *stubCheckoutService) *fiber.App {
	h := NewTransactionHandler(stub, nil)
	app := fiber.New()
	app.Post("/products/cart/payment", h.Checkout)
	app.Post("/products/transaction/payment", h.SubmitPayment)
	app.Put("/products/transaction/status/:id", h.UpdateStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	return resp.StatusCode, payload
}

func TestCheckoutEndpoint(t *testing.T) {
	stub := &stubCheckoutService{
		checkoutResult: &service.CheckoutResult{
			TransactionID: "tx-1",
			Total:         60,
			EndDate:       time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	app := newTestApp(stub)

	status, payload := postJSON(t, app, "POST", "/products/cart/payment", fiber.Map{"user_id": 1})
	assert.Equal(t, 201, status)
	assert.Equal(t, "tx-1", payload["transaction_id"])
	assert.Equal(t, float64(60), payload["total"])
}

func TestCheckoutEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", service.ErrInvalidInput, 400, "invalid_input"},
		{"insufficient stock", &repository.InsufficientStockError{ProductID: 3, Requested: 2, Available: 1}, 409, "insufficient_stock"},
		{"storage failure", assert.AnError, 500, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&stubCheckoutService{checkoutErr: tc.err})

			status, payload := postJSON(t, app, "POST", "/products/cart/payment", fiber.Map{})
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, payload["error"])
		})
	}
}

func TestCheckoutEndpointHidesInternalDetail(t *testing.T) {
	app := newTestApp(&stubCheckoutService{checkoutErr: assert.AnError})

	_, payload := postJSON(t, app, "POST", "/products/cart/payment", fiber.Map{})
	assert.Equal(t, "internal server error", payload["message"], "storage errors never leak to clients")
}

func TestSubmitPaymentEndpoint(t *testing.T) {
	app := newTestApp(&stubCheckoutService{paymentID: "pay-1"})

	status, payload := postJSON(t, app, "POST", "/products/transaction/payment", fiber.Map{"transaction_id": "tx-1"})
	assert.Equal(t, 201, status)
	assert.Equal(t, "pay-1", payload["payment_id"])
}

func TestSubmitPaymentEndpointAlreadyPaid(t *testing.T) {
	app := newTestApp(&stubCheckoutService{paymentErr: repository.ErrAlreadyPaid})

	status, payload := postJSON(t, app, "POST", "/products/transaction/payment", fiber.Map{"transaction_id": "tx-1"})
	assert.Equal(t, 409, status)
	assert.Equal(t, "already_paid", payload["error"])
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app := newTestApp(&stubCheckoutService{})
		status, _ := postJSON(t, app, "PUT", "/products/transaction/status/tx-1", fiber.Map{"status": "delivered"})
		assert.Equal(t, 200, status)
	})

	t.Run("invalid status", func(t *testing.T) {
		app := newTestApp(&stubCheckoutService{statusErr: service.ErrInvalidStatus})
		status, payload := postJSON(t, app, "PUT", "/products/transaction/status/tx-1", fiber.Map{"status": "bogus"})
		assert.Equal(t, 400, status)
		assert.Equal(t, "invalid_input", payload["error"])
	})

	t.Run("unknown transaction", func(t *testing.T) {
		app := newTestApp(&stubCheckoutService{statusErr: repository.ErrTransactionNotFound})
		status, payload := postJSON(t, app, "PUT", "/products/transaction/status/missing", fiber.Map{"status": "delivered"})
		assert.Equal(t, 404, status)
		assert.Equal(t, "not_found", payload["error"])
	})
}
