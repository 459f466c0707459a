package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domain "shopback/internal/errors"
	"shopback/internal/models"
	"shopback/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	users map[uint]*models.User
}

func (f *fakeAuthService) Login(email, password string) (*models.User, string, string, error) {
	return nil, "", "", nil
}

func (f *fakeAuthService) RefreshTokens(refreshToken string) (string, string, error) {
	return "", "", nil
}

func (f *fakeAuthService) Logout(userID uint) error { return nil }

func (f *fakeAuthService) GetUserByID(userID uint) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeAuthService) GetUserTokenVersion(userID uint) (int, error) {
	u, err := f.GetUserByID(userID)
	if err != nil {
		return 0, err
	}
	return u.TokenVersion, nil
}

func newTestApp(authService *fakeAuthService) *fiber.App {
	app := fiber.New()
	m := NewAuthMiddleware(authService)
	app.Get("/protected", m.Handler, func(c *fiber.Ctx) error {
		claims := c.Locals("claims").(*models.UserClaims)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Email: "u@example.com", Role: "user", TokenVersion: 1}
	user.ID = 1
	authService := &fakeAuthService{users: map[uint]*models.User{1: user}}
	app := newTestApp(authService)

	token, _, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       1,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: 1,
	})
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("stale token version is rejected", func(t *testing.T) {
		user.TokenVersion = 2 // logout bumped the version

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		user.TokenVersion = 1
	})
}
