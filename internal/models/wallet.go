package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet holds a user's cashback balance. The balance is only ever moved
// by the wallet service, which appends a Transaction for every mutation;
// at all times the balance equals sum(CREDIT) - sum(DEBIT) over the
// wallet's transactions.
type Wallet struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	UserID       uint          `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance      float64       `gorm:"default:0" json:"balance"`
	Transactions []Transaction `gorm:"foreignKey:WalletID" json:"transactions,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Ensure balance starts at 0
	w.Balance = 0.0
	return nil
}
