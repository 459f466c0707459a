package order

import "shopback/internal/models"

// CartItem is one line of an incoming cart.
type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutRequest is the settlement input.
type CheckoutRequest struct {
	Items         []CartItem `json:"products"`
	PaymentMethod string     `json:"payment_method"`
	UseWallet     bool       `json:"use_wallet"`
}

// WalletOutcome records whether wallet funds were applied to the order.
// When the wallet step fails or quotes zero the checkout degrades to a
// plain order instead of aborting; SkipReason says why.
type WalletOutcome struct {
	Applied    bool    `json:"applied"`
	AmountUsed float64 `json:"amount_used"`
	SkipReason string  `json:"skip_reason,omitempty"`
}

// SettlementResult is the settled order plus the resulting wallet state.
type SettlementResult struct {
	Order      *models.Order `json:"order"`
	Wallet     WalletOutcome `json:"wallet"`
	NewBalance float64       `json:"new_wallet_balance"`
}
