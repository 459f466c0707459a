package wallet

import (
	"context"
	"testing"

	"shopback/internal/config"
	domain "shopback/internal/errors"
	"shopback/internal/models"
	"shopback/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWalletRepo is an in-memory WalletRepository. ExecuteInTransaction
// runs the callback against the same store; GetByUserIDForUpdate behaves
// like GetByUserID since tests are single-threaded.
type fakeWalletRepo struct {
	wallets      map[uint]*models.Wallet
	transactions []models.Transaction
	nextTxID     uint
	updateErr    error
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[uint]*models.Wallet)}
}

func (f *fakeWalletRepo) addWallet(userID uint, balance float64) {
	f.wallets[userID] = &models.Wallet{ID: userID, UserID: userID, Balance: balance}
}

func (f *fakeWalletRepo) Create(w *models.Wallet) error {
	w.ID = w.UserID
	f.wallets[w.UserID] = w
	return nil
}

func (f *fakeWalletRepo) GetByUserID(userID uint) (*models.Wallet, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	copied := *w
	return &copied, nil
}

func (f *fakeWalletRepo) GetByUserIDForUpdate(userID uint) (*models.Wallet, error) {
	return f.GetByUserID(userID)
}

func (f *fakeWalletRepo) Update(w *models.Wallet) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.wallets[w.UserID]
	if !ok {
		return domain.ErrWalletNotFound
	}
	*stored = *w
	return nil
}

func (f *fakeWalletRepo) CreateTransaction(tx *models.Transaction) error {
	f.nextTxID++
	tx.ID = f.nextTxID
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeWalletRepo) GetTransactions(walletID uint, limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(f.transactions) - 1; i >= 0; i-- {
		if f.transactions[i].WalletID == walletID {
			out = append(out, f.transactions[i])
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(f)
}

// ledgerSum recomputes the balance from the transaction log.
func (f *fakeWalletRepo) ledgerSum(walletID uint) float64 {
	var sum float64
	for _, tx := range f.transactions {
		if tx.WalletID != walletID {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeCredit:
			sum += tx.Amount
		case models.TransactionTypeDebit:
			sum -= tx.Amount
		}
	}
	return sum
}

func newTestService(repo *fakeWalletRepo) Service {
	return NewService(repo, NoopCache{}, config.DefaultCashback())
}

func TestService_MaxUsable(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		orderTotal float64
		capPercent float64
		want       float64
	}{
		{name: "balance is the limit", balance: 50, orderTotal: 100, capPercent: 90, want: 50},
		{name: "cap is the limit", balance: 200, orderTotal: 100, capPercent: 90, want: 90},
		{name: "order total is the limit", balance: 200, orderTotal: 100, capPercent: 150, want: 100},
		{name: "empty wallet", balance: 0, orderTotal: 100, capPercent: 90, want: 0},
		{name: "exact cap", balance: 90, orderTotal: 100, capPercent: 90, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeWalletRepo()
			repo.addWallet(1, tt.balance)
			s := newTestService(repo)

			got, err := s.MaxUsable(context.Background(), 1, tt.orderTotal, tt.capPercent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_MaxUsable_WalletNotFound(t *testing.T) {
	s := newTestService(newFakeWalletRepo())

	_, err := s.MaxUsable(context.Background(), 42, 100, 90)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestService_Debit(t *testing.T) {
	t.Run("successful debit appends a DEBIT entry", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 200)
		s := newTestService(repo)

		res, err := s.Debit(context.Background(), 1, 90, 7)
		require.NoError(t, err)
		assert.Equal(t, 90.0, res.Amount)
		assert.Equal(t, 110.0, res.NewBalance)

		require.Len(t, repo.transactions, 1)
		tx := repo.transactions[0]
		assert.Equal(t, models.TransactionTypeDebit, tx.Type)
		assert.Equal(t, 90.0, tx.Amount)
		require.NotNil(t, tx.OrderID)
		assert.Equal(t, uint(7), *tx.OrderID)
	})

	t.Run("insufficient balance leaves wallet untouched", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 50)
		s := newTestService(repo)

		_, err := s.Debit(context.Background(), 1, 51, 7)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		w, err := repo.GetByUserID(1)
		require.NoError(t, err)
		assert.Equal(t, 50.0, w.Balance)
		assert.Empty(t, repo.transactions)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 50)
		s := newTestService(repo)

		_, err := s.Debit(context.Background(), 1, 0, 7)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = s.Debit(context.Background(), 1, -10, 7)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		s := newTestService(newFakeWalletRepo())

		_, err := s.Debit(context.Background(), 42, 10, 7)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})
}

func TestService_Credit(t *testing.T) {
	t.Run("category A credits 10 percent", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 0)
		s := newTestService(repo)

		res, err := s.Credit(context.Background(), 1, 100, 7, models.CategoryA)
		require.NoError(t, err)
		assert.Equal(t, 10.0, res.Amount)
		assert.Equal(t, 10.0, res.NewBalance)

		require.Len(t, repo.transactions, 1)
		assert.Equal(t, models.TransactionTypeCredit, repo.transactions[0].Type)
	})

	t.Run("zero percent category records zero credit", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 25)
		cfg := config.CashbackConfig{
			Percentages:           map[string]float64{"A": 10, "B": 2, "C": 0},
			MaxWalletUsagePercent: 90,
		}
		s := NewService(repo, NoopCache{}, cfg)

		res, err := s.Credit(context.Background(), 1, 100, 7, "C")
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Amount)
		assert.Equal(t, 25.0, res.NewBalance)

		// The ledger still shows cashback was evaluated.
		require.Len(t, repo.transactions, 1)
		assert.Equal(t, models.TransactionTypeCredit, repo.transactions[0].Type)
		assert.Equal(t, 0.0, repo.transactions[0].Amount)
	})

	t.Run("unknown category credits zero", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 0)
		s := newTestService(repo)

		res, err := s.Credit(context.Background(), 1, 100, 7, "Z")
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Amount)
	})

	t.Run("non-positive base amount is rejected", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.addWallet(1, 0)
		s := newTestService(repo)

		_, err := s.Credit(context.Background(), 1, 0, 7, models.CategoryA)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestService_BalanceMatchesLedger(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.addWallet(1, 0)
	s := newTestService(repo)
	ctx := context.Background()

	// A mixed sequence of operations, including a rejected over-debit.
	_, err := s.Credit(ctx, 1, 1000, 1, models.CategoryA) // +100
	require.NoError(t, err)
	_, err = s.Debit(ctx, 1, 40, 2) // -40
	require.NoError(t, err)
	_, err = s.Credit(ctx, 1, 50, 3, models.CategoryB) // +1
	require.NoError(t, err)
	_, err = s.Debit(ctx, 1, 10000, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	_, err = s.Credit(ctx, 1, 200, 5, models.CategoryC) // +14
	require.NoError(t, err)

	w, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 75.0, w.Balance)
	assert.Equal(t, w.Balance, repo.ledgerSum(w.ID))
	assert.GreaterOrEqual(t, w.Balance, 0.0)
}

func TestService_GetTransactions_NewestFirst(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.addWallet(1, 0)
	s := newTestService(repo)
	ctx := context.Background()

	_, err := s.Credit(ctx, 1, 100, 1, models.CategoryA)
	require.NoError(t, err)
	_, err = s.Debit(ctx, 1, 5, 2)
	require.NoError(t, err)

	txs, err := s.GetTransactions(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.TransactionTypeDebit, txs[0].Type)
	assert.Equal(t, models.TransactionTypeCredit, txs[1].Type)
}
