package repository

import (
	"errors"
	"time"

	"camrent-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionStats is the reporting aggregate over the whole ledger.
type TransactionStats struct {
	TotalTransactions int64 `json:"total_transactions"`
	TotalRevenue      int64 `json:"total_revenue"`
}

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	FindByID(transactionID string) (*model.Transaction, error)
	FindByUser(userID uint) ([]model.Transaction, error)
	FindPage(limit, offset int) ([]model.Transaction, int64, error)
	Aggregate() (*TransactionStats, error)
	UpdateStatus(transactionID string, status model.TransactionStatus) error
	CreatePayment(payment *model.Payment) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindByID(transactionID string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.First(&tx, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) FindByUser(userID uint) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) FindPage(limit, offset int) ([]model.Transaction, int64, error) {
	var total int64
	if err := r.db.Model(&model.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []model.Transaction
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	return txs, total, err
}

func (r *transactionRepo) Aggregate() (*TransactionStats, error) {
	var stats TransactionStats
	err := r.db.Model(&model.Transaction{}).
		Select("COUNT(*) AS total_transactions, COALESCE(SUM(total), 0) AS total_revenue").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *transactionRepo) UpdateStatus(transactionID string, status model.TransactionStatus) error {
	res := r.db.Model(&model.Transaction{}).
		Where("transaction_id = ?", transactionID).
		Updates(map[string]interface{}{
			"transaction_status": status,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CreatePayment inserts the payment row and flips the transaction to paid in
// one transaction: both commit together or neither does. The row lock makes a
// duplicate submission observe payment_status = paid and fail the guard.
func (r *transactionRepo) CreatePayment(payment *model.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var target model.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "transaction_id = ?", payment.TransactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		if target.PaymentStatus == model.PaymentPaid {
			return ErrAlreadyPaid
		}

		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&model.Transaction{}).
			Where("transaction_id = ?", payment.TransactionID).
			Updates(map[string]interface{}{
				"payment_status": model.PaymentPaid,
				"updated_at":     time.Now(),
			}).Error
	})
}
