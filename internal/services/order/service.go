// Package order implements the order settlement workflow: it prices a
// cart, decides how much of the order is paid from wallet balance, applies
// cashback and persists the order consistently with the ledger mutations.
package order

import (
	"context"
	"fmt"

	"shopback/internal/config"
	domain "shopback/internal/errors"
	"shopback/internal/models"
	"shopback/internal/repositories"
	"shopback/internal/services/wallet"

	"github.com/google/uuid"
)

const skipReasonEmptyBalance = "wallet balance is empty"

// Service turns carts into settled orders.
type Service interface {
	Checkout(ctx context.Context, userID uint, req CheckoutRequest) (*SettlementResult, error)
	ListOrders(ctx context.Context, userID uint) ([]models.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error)
}

type service struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	wallet   wallet.Service
	cfg      config.CashbackConfig
}

func NewService(
	orders repositories.OrderRepository,
	products repositories.ProductRepository,
	walletService wallet.Service,
	cfg config.CashbackConfig,
) Service {
	if orders == nil {
		panic("order repository is required")
	}
	if products == nil {
		panic("product repository is required")
	}
	if walletService == nil {
		panic("wallet service is required")
	}
	if cfg.Percentages == nil {
		cfg.Percentages = config.DefaultCashback().Percentages
	}
	if cfg.MaxWalletUsagePercent == 0 {
		cfg.MaxWalletUsagePercent = config.DefaultCashback().MaxWalletUsagePercent
	}
	return &service{
		orders:   orders,
		products: products,
		wallet:   walletService,
		cfg:      cfg,
	}
}

// Checkout settles a cart. Product-resolution failures abort before
// anything is persisted; wallet-step failures degrade the checkout to a
// no-wallet order. This asymmetry is deliberate: a valid cart must always
// produce an order.
func (s *service) Checkout(ctx context.Context, userID uint, req CheckoutRequest) (*SettlementResult, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, domain.ErrInvalidPaymentMethod
	}

	// Price the cart sequentially: accumulation order matters for the
	// primary-category tie-break below.
	var totalAmount float64
	var primaryCategory string
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		totalAmount += product.Price * float64(quantity)
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
		})

		// The whole order's cashback uses a single category: the one
		// with the highest percent. Later items only take over on a
		// strictly greater percent, so ties keep the first seen.
		if primaryCategory == "" || s.cfg.Percent(product.Category) > s.cfg.Percent(primaryCategory) {
			primaryCategory = product.Category
		}
	}

	order := &models.Order{
		Reference:     uuid.NewString(),
		UserID:        userID,
		Items:         items,
		TotalAmount:   totalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
	}

	result := &SettlementResult{}
	persisted := false

	if req.UseWallet {
		quote, err := s.wallet.MaxUsable(ctx, userID, totalAmount, s.cfg.MaxWalletUsagePercent)
		switch {
		case err != nil:
			result.Wallet.SkipReason = err.Error()
		case quote > 0:
			// The order must exist before the debit so the ledger entry
			// can reference it.
			if err := s.orders.Create(order); err != nil {
				return nil, err
			}
			persisted = true

			debit, err := s.wallet.Debit(ctx, userID, quote, order.ID)
			if err != nil {
				// Balance may have shrunk between quote and debit; the
				// order row is reused rather than duplicated and the
				// checkout continues as a no-wallet order.
				result.Wallet.SkipReason = err.Error()
			} else {
				order.WalletAmountUsed = debit.Amount
				result.Wallet.Applied = true
				result.Wallet.AmountUsed = debit.Amount
				result.NewBalance = debit.NewBalance
			}
		default:
			result.Wallet.SkipReason = skipReasonEmptyBalance
		}
	}

	if !persisted {
		if err := s.orders.Create(order); err != nil {
			return nil, err
		}
	}

	if result.Wallet.Applied {
		// Cashback only on the part the wallet did not cover.
		remainder := totalAmount - order.WalletAmountUsed
		if remainder > 0 {
			credit, err := s.wallet.Credit(ctx, userID, remainder, order.ID, primaryCategory)
			if err != nil {
				return nil, fmt.Errorf("failed to credit cashback: %w", err)
			}
			order.CashbackAmount = credit.Amount
			result.NewBalance = credit.NewBalance
		}
	} else {
		credit, err := s.wallet.Credit(ctx, userID, totalAmount, order.ID, primaryCategory)
		if err != nil {
			return nil, fmt.Errorf("failed to credit cashback: %w", err)
		}
		order.CashbackAmount = credit.Amount
		result.NewBalance = credit.NewBalance
	}

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	result.Order = order
	return result, nil
}

func (s *service) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.GetByUserID(userID)
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotOrderOwner
	}
	return order, nil
}
