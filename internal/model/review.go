package model

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"review_id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"fullname" validate:"required"`
	Review    string    `gorm:"type:text;not null" json:"review" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact is a "call me back" request from the public site.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"contact_id"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email" validate:"required,email"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
