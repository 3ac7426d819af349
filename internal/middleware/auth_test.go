package middleware_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ademola7/BlogApi/internal/auth/domain"
	"github.com/Ademola7/BlogApi/internal/auth/service"
	"github.com/Ademola7/BlogApi/internal/middleware"
	"github.com/Ademola7/BlogApi/internal/mocks"
)

func gatedApp(tokens service.TokenGenerator, users domain.UserRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/protected", middleware.RequireAuth(tokens, users), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		return c.JSON(fiber.Map{"user_id": user.ID})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 60, 10080)
	app := gatedApp(tokenService, mockUsers)

	issueAccess := func(t *testing.T, userID string) string {
		t.Helper()
		token, err := tokenService.IssueAccess(userID)
		require.NoError(t, err)
		return token
	}

	t.Run("attaches the resolved user", func(t *testing.T) {
		mockUsers.EXPECT().FindByID(gomock.Any(), "user-123").
			Return(&domain.User{ID: "user-123", Email: "jane@x.com"}, nil)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueAccess(t, "user-123"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("header without bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, issueAccess(t, "user-123"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("refresh token rejected at the gate", func(t *testing.T) {
		refreshToken, err := tokenService.IssueRefresh("user-123")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+refreshToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("deleted user holding a valid token", func(t *testing.T) {
		mockUsers.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueAccess(t, "ghost"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockUsers.EXPECT().FindByID(gomock.Any(), "user-123").
			Return(nil, errors.New("connection reset"))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueAccess(t, "user-123"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCurrentUser_NilWithoutGate(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		assert.Nil(t, middleware.CurrentUser(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
