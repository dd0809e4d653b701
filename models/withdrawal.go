package models

import "time"

// Withdrawal records a payout request against a TRC-20 address. The balance
// hold is taken when the row is created; settlement happens out of band.
type Withdrawal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Address   string    `gorm:"size:64;not null" json:"address"`
	OrderID   string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	Status    string    `gorm:"type:enum('Success','Pending','Failed');not null;default:'Pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
