package model

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type TransactionStatus string

const (
	StatusProcessing TransactionStatus = "processing"
	StatusDelivered  TransactionStatus = "delivered"
	StatusCompleted  TransactionStatus = "completed"
	StatusCanceled   TransactionStatus = "canceled"
)

var validStatuses = map[TransactionStatus]bool{
	StatusProcessing: true,
	StatusDelivered:  true,
	StatusCompleted:  true,
	StatusCanceled:   true,
}

func (s TransactionStatus) Valid() bool { return validStatuses[s] }

// Transaction is one committed checkout. PaymentStatus and TransactionStatus
// evolve independently after creation.
type Transaction struct {
	TransactionID     string            `gorm:"type:varchar(36);primaryKey" json:"transaction_id"`
	UserID            uint              `gorm:"not null;index" json:"user_id"`
	FullName          string            `gorm:"type:varchar(255);not null" json:"full_name"`
	Email             string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone             string            `gorm:"type:varchar(30);not null" json:"phone"`
	Address           string            `gorm:"type:text;not null" json:"address"`
	City              string            `gorm:"type:varchar(100);not null" json:"city"`
	PostalCode        string            `gorm:"type:varchar(20);not null" json:"postal_code"`
	PickupMethod      string            `gorm:"type:varchar(50);not null" json:"pickup_method"`
	PaymentMethod     string            `gorm:"type:varchar(50);not null" json:"payment_method"`
	PickupDate        time.Time         `gorm:"not null" json:"pickup_date"`
	EndDate           time.Time         `gorm:"not null" json:"end_date"`
	IDCardFile        string            `gorm:"type:varchar(255);not null" json:"id_card_file"`
	ProductNames      string            `gorm:"type:text" json:"product_name"`
	PaymentStatus     PaymentStatus     `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	TransactionStatus TransactionStatus `gorm:"type:varchar(20);not null;default:processing" json:"transaction_status"`
	Total             int64             `gorm:"not null" json:"total"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
