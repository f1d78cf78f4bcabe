package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/internal/ws"
	"camrent-backend/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid transaction status")
)

// CheckoutItem is one cart line being checked out. Days is the rental length
// for that item; the rental period of the whole transaction is the sum.
type CheckoutItem struct {
	CartID      uint   `json:"cart_id"`
	ProductID   uint   `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	PricePerDay int64  `json:"price_per_day" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Days        int    `json:"days" validate:"required,gt=0"`
}

type CheckoutRequest struct {
	UserID        uint           `json:"user_id" validate:"required"`
	FullName      string         `json:"full_name" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required"`
	Address       string         `json:"address" validate:"required"`
	City          string         `json:"city" validate:"required"`
	PostalCode    string         `json:"postal_code" validate:"required"`
	PickupMethod  string         `json:"pickup_method" validate:"required"`
	PaymentMethod string         `json:"payment_method" validate:"required"`
	PickupDate    string         `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	IDCardFile    string         `json:"id_card_file" validate:"required"`
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutResult struct {
	TransactionID string    `json:"transaction_id"`
	Total         int64     `json:"total"`
	EndDate       time.Time `json:"end_date"`
}

type PaymentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	PaymentProof  string `json:"payment_proof" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Status        string `json:"status" validate:"required"`
}

type CheckoutService interface {
	Checkout(req *CheckoutRequest) (*CheckoutResult, error)
	SubmitPayment(req *PaymentRequest) (string, error)
	UpdateStatus(transactionID, status string) error
}

type checkoutService struct {
	stockRepo repository.StockRepository
	cartRepo  repository.CartRepository
	txRepo    repository.TransactionRepository
	wsHub     *ws.Hub
}

func NewCheckoutService(
	stockRepo repository.StockRepository,
	cartRepo repository.CartRepository,
	txRepo repository.TransactionRepository,
	hub *ws.Hub,
) CheckoutService {
	return &checkoutService{
		stockRepo: stockRepo,
		cartRepo:  cartRepo,
		txRepo:    txRepo,
		wsHub:     hub,
	}
}

// Checkout runs the order workflow:
//
//	validate -> reserve stock -> persist transaction -> drain cart
//
// Stock is reserved item by item in ascending product order so overlapping
// checkouts always lock products in the same order. Any failure after a
// partial reservation restores the already-reserved items (in reverse) before
// the error surfaces. Cart drain runs after the transaction has committed and
// must never roll it back.
func (s *checkoutService) Checkout(req *CheckoutRequest) (*CheckoutResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	ordered := make([]CheckoutItem, len(req.Items))
	copy(ordered, req.Items)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	reserved := make([]CheckoutItem, 0, len(ordered))
	for _, it := range ordered {
		if err := s.stockRepo.Reserve(it.ProductID, it.Quantity); err != nil {
			s.compensate(reserved)
			return nil, err
		}
		reserved = append(reserved, it)
	}

	tx := s.buildTransaction(req, pickupDate)
	if err := s.txRepo.Create(tx); err != nil {
		s.compensate(reserved)
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	cartIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if it.CartID != 0 {
			cartIDs = append(cartIDs, it.CartID)
		}
	}
	if err := s.cartRepo.DeleteByIDs(cartIDs); err != nil {
		// The transaction stands; the stale cart lines get cleaned up on a
		// later drain or explicit removal.
		log.Printf("cart drain failed for transaction %s: %v", tx.TransactionID, err)
	}

	s.broadcastCheckout(tx, req.Items)

	return &CheckoutResult{
		TransactionID: tx.TransactionID,
		Total:         tx.Total,
		EndDate:       tx.EndDate,
	}, nil
}

func (s *checkoutService) buildTransaction(req *CheckoutRequest, pickupDate time.Time) *model.Transaction {
	var total int64
	totalDays := 0
	names := ""
	for i, it := range req.Items {
		total += it.PricePerDay * int64(it.Quantity) * int64(it.Days)
		totalDays += it.Days
		if i > 0 {
			names += ", "
		}
		names += it.ProductName
	}

	now := time.Now()
	return &model.Transaction{
		TransactionID:     uuid.NewString(),
		UserID:            req.UserID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		PostalCode:        req.PostalCode,
		PickupMethod:      req.PickupMethod,
		PaymentMethod:     req.PaymentMethod,
		PickupDate:        pickupDate,
		EndDate:           pickupDate.AddDate(0, 0, totalDays),
		IDCardFile:        req.IDCardFile,
		ProductNames:      names,
		PaymentStatus:     model.PaymentPending,
		TransactionStatus: model.StatusProcessing,
		Total:             total,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// compensate restores every reserved item in reverse order. A failed restore
// is logged and the remaining items are still attempted.
func (s *checkoutService) compensate(reserved []CheckoutItem) {
	restored := make([]CheckoutItem, 0, len(reserved))
	for i := len(reserved) - 1; i >= 0; i-- {
		it := reserved[i]
		if err := s.stockRepo.Restore(it.ProductID, it.Quantity); err != nil {
			log.Printf("stock restore failed for product %d qty %d: %v", it.ProductID, it.Quantity, err)
			continue
		}
		restored = append(restored, it)
	}
	s.broadcastRestore(restored)
}

func (s *checkoutService) broadcastRestore(items []CheckoutItem) {
	if s.wsHub == nil || len(items) == 0 {
		return
	}
	go func() {
		changes := make([]map[string]interface{}, 0, len(items))
		for _, it := range items {
			changes = append(changes, map[string]interface{}{
				"product_id": it.ProductID,
				"quantity":   it.Quantity,
			})
		}
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "reservation_released",
			"items":  changes,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

// SubmitPayment records a payment against a committed transaction. The ledger
// rejects a second submission for the same transaction with ErrAlreadyPaid.
func (s *checkoutService) SubmitPayment(req *PaymentRequest) (string, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return "", fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	payment := &model.Payment{
		PaymentID:     uuid.NewString(),
		TransactionID: req.TransactionID,
		PaymentProof:  req.PaymentProof,
		Amount:        req.Amount,
		Status:        req.Status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.txRepo.CreatePayment(payment); err != nil {
		return "", err
	}
	return payment.PaymentID, nil
}

func (s *checkoutService) UpdateStatus(transactionID, status string) error {
	st := model.TransactionStatus(status)
	if !st.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.txRepo.UpdateStatus(transactionID, st)
}

func (s *checkoutService) broadcastCheckout(tx *model.Transaction, items []CheckoutItem) {
	if s.wsHub == nil {
		return
	}
	go func() {
		changes := make([]map[string]interface{}, 0, len(items))
		for _, it := range items {
			changes = append(changes, map[string]interface{}{
				"product_id": it.ProductID,
				"quantity":   it.Quantity,
			})
		}
		payload := map[string]interface{}{
			"type":           "stock_update",
			"action":         "checkout_completed",
			"transaction_id": tx.TransactionID,
			"items":          changes,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
