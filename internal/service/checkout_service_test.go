package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStockRepo struct {
	mu           sync.Mutex
	stock        map[uint]int
	reserveOrder []uint
	restoreOrder []uint
	restoreErr   error
}

func (f *fakeStockRepo) Reserve(productID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	available, ok := f.stock[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	if available < quantity {
		return &repository.InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: available,
		}
	}
	f.stock[productID] = available - quantity
	f.reserveOrder = append(f.reserveOrder, productID)
	return nil
}

func (f *fakeStockRepo) Restore(productID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.stock[productID] += quantity
	f.restoreOrder = append(f.restoreOrder, productID)
	return nil
}

type fakeCartRepo struct {
	mu       sync.Mutex
	items    []model.CartItem
	drained  []uint
	drainErr error
}

func (f *fakeCartRepo) Upsert(item *model.CartItem) error { return nil }
func (f *fakeCartRepo) FindByUser(userID uint) ([]model.CartItem, error) {
	return f.items, nil
}
func (f *fakeCartRepo) Delete(cartID uint) error { return nil }
func (f *fakeCartRepo) DeleteByIDs(cartIDs []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.drainErr != nil {
		return f.drainErr
	}
	f.drained = append(f.drained, cartIDs...)
	return nil
}

type fakeTxRepo struct {
	mu        sync.Mutex
	created   []*model.Transaction
	createErr error
	payments  []*model.Payment
	paid      map[string]bool
	statuses  map[string]model.TransactionStatus
	known     map[string]bool
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{
		paid:     make(map[string]bool),
		statuses: make(map[string]model.TransactionStatus),
		known:    make(map[string]bool),
	}
}

func (f *fakeTxRepo) Create(tx *model.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, tx)
	f.known[tx.TransactionID] = true
	return nil
}

func (f *fakeTxRepo) FindByID(id string) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.created {
		if tx.TransactionID == id {
			return tx, nil
		}
	}
	return nil, repository.ErrTransactionNotFound
}

func (f *fakeTxRepo) FindByUser(userID uint) ([]model.Transaction, error) { return nil, nil }
func (f *fakeTxRepo) FindPage(limit, offset int) ([]model.Transaction, int64, error) {
	return nil, 0, nil
}
func (f *fakeTxRepo) Aggregate() (*repository.TransactionStats, error) {
	return &repository.TransactionStats{}, nil
}

func (f *fakeTxRepo) UpdateStatus(id string, status model.TransactionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.known[id] {
		return repository.ErrTransactionNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeTxRepo) CreatePayment(payment *model.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.known[payment.TransactionID] {
		return repository.ErrTransactionNotFound
	}
	if f.paid[payment.TransactionID] {
		return repository.ErrAlreadyPaid
	}
	f.payments = append(f.payments, payment)
	f.paid[payment.TransactionID] = true
	return nil
}

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		UserID:        7,
		FullName:      "Dian Pratama",
		Email:         "dian@example.com",
		Phone:         "081234567890",
		Address:       "Jl. Kebon Jeruk 12",
		City:          "Jakarta",
		PostalCode:    "11530",
		PickupMethod:  "store",
		PaymentMethod: "transfer",
		PickupDate:    "2024-01-01",
		IDCardFile:    "ktp-dian.jpg",
		Items: []CheckoutItem{
			{CartID: 11, ProductID: 1, ProductName: "Sony A7 III", PricePerDay: 10, Quantity: 2, Days: 3},
		},
	}
}

func TestCheckoutSuccess(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	cart := &fakeCartRepo{}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, cart, txRepo, nil)

	result, err := svc.Checkout(validCheckoutRequest())
	require.NoError(t, err)
	require.NotEmpty(t, result.TransactionID)

	// 10/day * qty 2 * 3 days
	assert.Equal(t, int64(60), result.Total)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), result.EndDate)

	assert.Equal(t, 3, stock.stock[1], "stock decremented by quantity")
	assert.Equal(t, []uint{11}, cart.drained, "cart drained after commit")

	require.Len(t, txRepo.created, 1)
	tx := txRepo.created[0]
	assert.Equal(t, model.PaymentPending, tx.PaymentStatus)
	assert.Equal(t, model.StatusProcessing, tx.TransactionStatus)
	assert.Equal(t, "Sony A7 III", tx.ProductNames)
	assert.Equal(t, uint(7), tx.UserID)
}

func TestCheckoutProductNamesJoinOrder(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5, 2: 5}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	req := validCheckoutRequest()
	req.Items = []CheckoutItem{
		{CartID: 1, ProductID: 2, ProductName: "Tripod", PricePerDay: 5, Quantity: 1, Days: 1},
		{CartID: 2, ProductID: 1, ProductName: "Sony A7 III", PricePerDay: 10, Quantity: 1, Days: 2},
	}

	_, err := svc.Checkout(req)
	require.NoError(t, err)

	// Names keep the request order even though reservation reorders by product.
	assert.Equal(t, "Tripod, Sony A7 III", txRepo.created[0].ProductNames)
	assert.Equal(t, []uint{1, 2}, stock.reserveOrder, "reservation runs in ascending product order")
}

func TestCheckoutInsufficientStock(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 1}}
	cart := &fakeCartRepo{}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, cart, txRepo, nil)

	_, err := svc.Checkout(validCheckoutRequest())

	var stockErr *repository.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, uint(1), stockErr.ProductID)

	assert.Equal(t, 1, stock.stock[1], "stock unchanged")
	assert.Empty(t, cart.drained, "cart unchanged")
	assert.Empty(t, txRepo.created, "no transaction persisted")
}

func TestCheckoutPartialReservationCompensates(t *testing.T) {
	// Product 2 has enough stock, product 5 does not; the reservation of
	// product 2 must be rolled back.
	stock := &fakeStockRepo{stock: map[uint]int{2: 10, 5: 0}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	req := validCheckoutRequest()
	req.Items = []CheckoutItem{
		{CartID: 1, ProductID: 5, ProductName: "Flash", PricePerDay: 3, Quantity: 1, Days: 1},
		{CartID: 2, ProductID: 2, ProductName: "Lens", PricePerDay: 8, Quantity: 4, Days: 2},
	}

	_, err := svc.Checkout(req)

	var stockErr *repository.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, uint(5), stockErr.ProductID)

	assert.Equal(t, 10, stock.stock[2], "reserved stock restored")
	assert.Equal(t, []uint{2}, stock.restoreOrder)
	assert.Empty(t, txRepo.created)
}

func TestCheckoutPersistFailureRestoresStock(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	txRepo := newFakeTxRepo()
	txRepo.createErr = errors.New("connection reset")
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	_, err := svc.Checkout(validCheckoutRequest())
	require.Error(t, err)

	assert.Equal(t, 5, stock.stock[1], "compensation is a net no-op on stock")
	assert.Empty(t, txRepo.created)
}

func TestCheckoutCartDrainFailureIsNonFatal(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	cart := &fakeCartRepo{drainErr: errors.New("timeout")}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, cart, txRepo, nil)

	result, err := svc.Checkout(validCheckoutRequest())
	require.NoError(t, err, "a committed transaction is never rolled back by cart cleanup")
	require.NotNil(t, result)
	assert.Len(t, txRepo.created, 1)
	assert.Equal(t, 3, stock.stock[1])
}

func TestCheckoutValidation(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	cases := []struct {
		name   string
		mutate func(*CheckoutRequest)
	}{
		{"empty items", func(r *CheckoutRequest) { r.Items = nil }},
		{"missing full name", func(r *CheckoutRequest) { r.FullName = "" }},
		{"bad email", func(r *CheckoutRequest) { r.Email = "not-an-email" }},
		{"zero quantity", func(r *CheckoutRequest) { r.Items[0].Quantity = 0 }},
		{"negative days", func(r *CheckoutRequest) { r.Items[0].Days = -1 }},
		{"bad pickup date", func(r *CheckoutRequest) { r.PickupDate = "01-01-2024" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tc.mutate(req)

			_, err := svc.Checkout(req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 5, stock.stock[1], "validation failures have no side effects")
			assert.Empty(t, txRepo.created)
		})
	}
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	const initialStock = 5
	stock := &fakeStockRepo{stock: map[uint]int{1: initialStock}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	var wg sync.WaitGroup
	succeeded := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := validCheckoutRequest()
			req.Items[0].Quantity = 2
			if _, err := svc.Checkout(req); err == nil {
				succeeded <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(succeeded)

	wins := 0
	for range succeeded {
		wins++
	}
	assert.Equal(t, 2, wins, "only two checkouts of qty 2 fit into stock 5")
	assert.Equal(t, 1, stock.stock[1])
	assert.GreaterOrEqual(t, stock.stock[1], 0, "stock never goes negative")
}

func TestSubmitPaymentIdempotenceGuard(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	result, err := svc.Checkout(validCheckoutRequest())
	require.NoError(t, err)

	req := &PaymentRequest{
		TransactionID: result.TransactionID,
		PaymentProof:  "proof.jpg",
		Amount:        60,
		Status:        "confirmed",
	}

	paymentID, err := svc.SubmitPayment(req)
	require.NoError(t, err)
	assert.NotEmpty(t, paymentID)

	_, err = svc.SubmitPayment(req)
	require.ErrorIs(t, err, repository.ErrAlreadyPaid)
	assert.Len(t, txRepo.payments, 1, "payment applied exactly once")
}

func TestSubmitPaymentUnknownTransaction(t *testing.T) {
	svc := NewCheckoutService(&fakeStockRepo{stock: map[uint]int{}}, &fakeCartRepo{}, newFakeTxRepo(), nil)

	_, err := svc.SubmitPayment(&PaymentRequest{
		TransactionID: "no-such-id",
		PaymentProof:  "proof.jpg",
		Amount:        10,
		Status:        "confirmed",
	})
	require.ErrorIs(t, err, repository.ErrTransactionNotFound)
}

func TestUpdateStatus(t *testing.T) {
	stock := &fakeStockRepo{stock: map[uint]int{1: 5}}
	txRepo := newFakeTxRepo()
	svc := NewCheckoutService(stock, &fakeCartRepo{}, txRepo, nil)

	result, err := svc.Checkout(validCheckoutRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(result.TransactionID, "delivered"))
	assert.Equal(t, model.StatusDelivered, txRepo.statuses[result.TransactionID])

	err = svc.UpdateStatus(result.TransactionID, "bogus")
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, model.StatusDelivered, txRepo.statuses[result.TransactionID], "invalid status leaves the transaction untouched")

	err = svc.UpdateStatus("missing-id", "completed")
	require.ErrorIs(t, err, repository.ErrTransactionNotFound)
}
