package model

import "time"

// Payment references a Transaction but does not own its lifecycle. A
// transaction may accumulate several payment rows; only the one that flips
// payment_status to paid is accepted.
type Payment struct {
	PaymentID     string    `gorm:"type:varchar(36);primaryKey" json:"payment_id"`
	TransactionID string    `gorm:"type:varchar(36);not null;index" json:"transaction_id"`
	PaymentProof  string    `gorm:"type:varchar(255);not null" json:"payment_proof"`
	Amount        int64     `gorm:"not null" json:"amount"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
