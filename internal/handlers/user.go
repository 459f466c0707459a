package handlers

import (
	"shopback/internal/models"
	"shopback/internal/services/user"
	"shopback/internal/services/wallet"
	"shopback/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService   user.Service
	walletService wallet.Service
}

func NewUserHandler(userService user.Service, walletService wallet.Service) *UserHandler {
	return &UserHandler{
		userService:   userService,
		walletService: walletService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	// Registrations never pick their own role.
	input.Role = "user"

	created, err := h.userService.Create(&input)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       created.ID,
		Email:        created.Email,
		Role:         created.Role,
		TokenVersion: created.TokenVersion,
	})
	if err != nil {
		return utils.InternalError(c, "Failed to generate tokens")
	}

	return utils.Created(c, fiber.Map{
		"user":          created,
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	if w, err := h.walletService.GetWallet(c.Context(), claims.UserID); err == nil {
		u.Wallet = w
	}

	return utils.Success(c, fiber.Map{
		"user": u,
	})
}
