package model

import "time"

// Product is a rentable camera item. Stock is mutated only by the checkout
// workflow (reserve/restore) or by an absolute admin update.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"product_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`
	Category    string    `gorm:"type:varchar(100);index" json:"category" validate:"required"`
	PricePerDay int64     `gorm:"not null" json:"price_per_day" validate:"required,gt=0"`
	Stock       int       `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Description string    `gorm:"type:text" json:"description" validate:"required"`
	Image       string    `gorm:"type:varchar(255)" json:"product_image" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
