package handlers

import (
	"errors"
	"strconv"

	domain "shopback/internal/errors"
	"shopback/internal/services/order"
	"shopback/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Checkout settles a cart into an order, applying wallet funds and
// cashback according to the settlement workflow.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req order.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	result, err := h.orderService.Checkout(c.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrInvalidPaymentMethod):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrProductNotFound):
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Created(c, fiber.Map{
		"success":            true,
		"order":              result.Order,
		"wallet_used":        result.Wallet.AmountUsed,
		"cashback_amount":    result.Order.CashbackAmount,
		"new_wallet_balance": result.NewBalance,
		"wallet":             result.Wallet,
	})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	orders, err := h.orderService.ListOrders(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to list orders")
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid order id")
	}

	o, err := h.orderService.GetOrder(c.Context(), claims.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return utils.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrNotOrderOwner):
			return utils.Unauthorized(c, err.Error())
		}
		return utils.InternalError(c, "Failed to get order")
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"order":   o,
	})
}
