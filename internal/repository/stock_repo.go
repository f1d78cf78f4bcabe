package repository

import (
	"errors"

	"camrent-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository is the stock ledger. Reserve and Restore are the only two
// ways checkout may touch a product's stock count.
type StockRepository interface {
	Reserve(productID uint, quantity int) error
	Restore(productID uint, quantity int) error
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

// Reserve locks the product row, checks stock >= quantity and decrements in
// the same transaction. Concurrent reservations against one product serialize
// on the row lock, so the stock count can never go negative.
func (r *stockRepo) Reserve(productID uint, quantity int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if product.Stock < quantity {
			return &InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: product.Stock,
			}
		}

		return tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Update("stock", gorm.Expr("stock - ?", quantity)).Error
	})
}

// Restore is the compensating increment for a reservation whose checkout
// failed later on.
func (r *stockRepo) Restore(productID uint, quantity int) error {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
