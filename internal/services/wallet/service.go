// Package wallet implements the wallet ledger service. It is the sole
// mutator of wallet balances: every balance change appends exactly one
// CREDIT or DEBIT transaction, so the balance always equals the sum of
// credits minus the sum of debits.
package wallet

import (
	"context"
	"fmt"

	"shopback/internal/config"
	domain "shopback/internal/errors"
	"shopback/internal/models"
	"shopback/internal/repositories"
)

// Service is the wallet ledger interface.
type Service interface {
	// GetWallet returns the user's wallet (balance view, cached).
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)

	// GetTransactions returns the wallet's ledger entries, newest first.
	GetTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)

	// MaxUsable quotes how much wallet balance may be applied to an order:
	// min(balance, orderTotal, orderTotal*capPercent/100). Pure read.
	MaxUsable(ctx context.Context, userID uint, orderTotal, capPercent float64) (float64, error)

	// Debit removes amount from the wallet and appends a DEBIT entry.
	// Fails with domain.ErrInsufficientBalance when amount exceeds the
	// balance at execution time, leaving the balance unchanged.
	Debit(ctx context.Context, userID uint, amount float64, orderID uint) (*MutationResult, error)

	// Credit computes cashback as baseAmount * percent(category) / 100,
	// appends a CREDIT entry for the computed amount and increments the
	// balance. A zero-percent category still appends a zero-value entry.
	Credit(ctx context.Context, userID uint, baseAmount float64, orderID uint, category string) (*MutationResult, error)
}

type service struct {
	repo  repositories.WalletRepository
	cache Cache
	cfg   config.CashbackConfig
}

// NewService creates the wallet ledger service. Debit and Credit are not
// idempotent; retrying re-applies the mutation.
func NewService(repo repositories.WalletRepository, cache Cache, cfg config.CashbackConfig) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = NoopCache{}
	}
	if cfg.Percentages == nil {
		cfg.Percentages = config.DefaultCashback().Percentages
	}
	if cfg.MaxWalletUsagePercent == 0 {
		cfg.MaxWalletUsagePercent = config.DefaultCashback().MaxWalletUsagePercent
	}
	return &service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTransactions(wallet.ID, limit, offset)
}

func (s *service) MaxUsable(ctx context.Context, userID uint, orderTotal, capPercent float64) (float64, error) {
	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return 0, err
	}

	capped := orderTotal * capPercent / 100
	usable := wallet.Balance
	if orderTotal < usable {
		usable = orderTotal
	}
	if capped < usable {
		usable = capped
	}
	return usable, nil
}

func (s *service) Debit(ctx context.Context, userID uint, amount float64, orderID uint) (*MutationResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var newBalance float64
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		// Row lock serializes concurrent ledger mutations on the same
		// wallet, so the balance floor check holds under contention.
		wallet, err := tx.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}

		if amount > wallet.Balance {
			return domain.ErrInsufficientBalance
		}

		wallet.Balance -= amount
		if err := tx.Update(wallet); err != nil {
			return err
		}

		newBalance = wallet.Balance
		return tx.CreateTransaction(&models.Transaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionTypeDebit,
			Amount:      amount,
			Description: fmt.Sprintf("Used for order #%d", orderID),
			OrderID:     &orderID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateWallet(ctx, userID)
	return &MutationResult{Amount: amount, NewBalance: newBalance}, nil
}

func (s *service) Credit(ctx context.Context, userID uint, baseAmount float64, orderID uint, category string) (*MutationResult, error) {
	if baseAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	percent := s.cfg.Percent(category)
	cashback := baseAmount * percent / 100

	var newBalance float64
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}

		wallet.Balance += cashback
		if err := tx.Update(wallet); err != nil {
			return err
		}

		newBalance = wallet.Balance
		// A zero-percent category still records a zero-value credit so
		// the ledger shows cashback was evaluated for the order.
		return tx.CreateTransaction(&models.Transaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionTypeCredit,
			Amount:      cashback,
			Description: fmt.Sprintf("Cashback for order #%d (%g%% of %.2f)", orderID, percent, baseAmount),
			OrderID:     &orderID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateWallet(ctx, userID)
	return &MutationResult{Amount: cashback, NewBalance: newBalance}, nil
}
