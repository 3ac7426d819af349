package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ademola7/BlogApi/internal/auth/domain"
	"github.com/Ademola7/BlogApi/internal/auth/service"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
)

const (
	userLocalsKey = "currentUser"
	bearerPrefix  = "Bearer "
)

// RequireAuth validates the bearer access token on the request and attaches
// the resolved user to the request context. Every failure mode (missing
// header, bad signature, expired token, deleted user) is reported as the same
// 401 so callers learn nothing about why validation failed.
func RequireAuth(tokens service.TokenGenerator, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return apperrors.ErrUnauthorized
		}

		userID, err := tokens.VerifyAccess(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return apperrors.ErrUnauthorized
		}

		// A token may outlive its user; re-resolving the subject on every
		// request catches that.
		user, err := users.FindByID(c.Context(), userID)
		if err != nil || user == nil {
			return apperrors.ErrUnauthorized
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth, or nil on routes that
// did not pass through the gate.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userLocalsKey).(*domain.User)
	return user
}
