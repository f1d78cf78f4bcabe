package model

import "time"

// CartItem is unique per (user_id, product_id); adding the same product again
// increments Quantity instead of creating a second row.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"cart_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	UnitPrice   int64     `gorm:"not null" json:"product_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
