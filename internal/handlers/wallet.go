package handlers

import (
	"errors"
	"strconv"

	domain "shopback/internal/errors"
	"shopback/internal/services/wallet"
	"shopback/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxTransactionLimit = 100

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet returns the balance and the transaction history, newest first.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return utils.NotFound(c, "Wallet not found")
		}
		return utils.InternalError(c, "Failed to get wallet")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	if page < 1 {
		page = 1
	}

	transactions, err := h.walletService.GetTransactions(c.Context(), claims.UserID, limit, (page-1)*limit)
	if err != nil {
		return utils.InternalError(c, "Failed to get transactions")
	}

	return utils.Success(c, fiber.Map{
		"wallet": fiber.Map{
			"balance":      w.Balance,
			"transactions": transactions,
		},
	})
}
