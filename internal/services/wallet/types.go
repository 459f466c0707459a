package wallet

import (
	"context"

	"shopback/internal/models"
)

// MutationResult reports the outcome of a ledger mutation.
type MutationResult struct {
	// Amount actually applied: the debited amount, or the computed
	// cashback for a credit.
	Amount float64
	// NewBalance is the wallet balance after the mutation.
	NewBalance float64
}

// Cache is the wallet-view cache used for balance reads. Mutations
// invalidate; reads go through.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// NoopCache satisfies Cache without caching anything.
type NoopCache struct{}

func (NoopCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	return nil, ErrCacheDisabled
}

func (NoopCache) SetWallet(ctx context.Context, wallet *models.Wallet) error { return nil }

func (NoopCache) InvalidateWallet(ctx context.Context, userID uint) error { return nil }
