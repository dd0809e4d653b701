package models

import "time"

const (
	TxTypeSignup     = "signup"
	TxTypeTask       = "task"
	TxTypeBounty     = "bounty"
	TxTypeCommission = "commission"
	TxTypeVip        = "vip"
	TxTypeWithdrawal = "withdrawal"
	TxTypeAdminBonus = "admin_bonus"
	TxTypeAdminReset = "admin_reset"
	TxTypeAdminSet   = "admin_set"
)

// Transaction is the audit ledger: every balance mutation writes one row with
// the reason it happened.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Amount          float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	OrderID         string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	TransactionFlow string    `gorm:"type:enum('debit','credit');not null" json:"transaction_flow"`
	TransactionType string    `gorm:"type:varchar(50);not null" json:"transaction_type"`
	Message         *string   `gorm:"type:text" json:"message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
