package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

// Transaction is one append-only ledger entry against a wallet. Rows are
// never updated or deleted once written.
type Transaction struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	WalletID    uint    `gorm:"index;not null" json:"wallet_id"`
	Type        string  `gorm:"not null" json:"type"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `json:"description"`
	OrderID     *uint   `gorm:"index" json:"order_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
