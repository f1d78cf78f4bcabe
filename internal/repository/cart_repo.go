package repository

import (
	"camrent-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Upsert(item *model.CartItem) error
	FindByUser(userID uint) ([]model.CartItem, error)
	Delete(cartID uint) error
	DeleteByIDs(cartIDs []uint) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

// Upsert inserts the cart line or, when the (user_id, product_id) pair already
// exists, adds the new quantity onto the existing row.
func (r *cartRepo) Upsert(item *model.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(item).Error
}

func (r *cartRepo) FindByUser(userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *cartRepo) Delete(cartID uint) error {
	res := r.db.Delete(&model.CartItem{}, "id = ?", cartID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// DeleteByIDs drains checked-out lines. Called only after the owning
// transaction has committed; missing rows are not an error here.
func (r *cartRepo) DeleteByIDs(cartIDs []uint) error {
	if len(cartIDs) == 0 {
		return nil
	}
	return r.db.Delete(&model.CartItem{}, "id IN ?", cartIDs).Error
}
