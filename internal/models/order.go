package models

import (
	"time"
)

// Payment methods
const (
	PaymentMethodCreditCard = "CREDIT_CARD"
	PaymentMethodDebitCard  = "DEBIT_CARD"
	PaymentMethodWallet     = "WALLET"
	PaymentMethodCOD        = "COD"
)

// Order statuses
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Order is created once at checkout and then updated to record the wallet
// amount used and the cashback earned. Orders are never deleted.
type Order struct {
	ID               uint        `gorm:"primarykey" json:"id"`
	Reference        string      `gorm:"uniqueIndex;not null" json:"reference"`
	UserID           uint        `gorm:"index;not null" json:"user_id"`
	Items            []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount      float64     `gorm:"not null" json:"total_amount"`
	WalletAmountUsed float64     `gorm:"default:0" json:"wallet_amount_used"`
	CashbackAmount   float64     `gorm:"default:0" json:"cashback_amount"`
	PaymentMethod    string      `gorm:"not null" json:"payment_method"`
	Status           string      `gorm:"not null;default:'PENDING'" json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderItem snapshots the unit price at purchase time so later catalog
// price changes never alter historical orders.
type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// ValidPaymentMethod reports whether the payment method is supported.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodWallet, PaymentMethodCOD:
		return true
	}
	return false
}
