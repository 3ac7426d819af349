package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	users := app.Group("/api/v1/users")
	users.Post("/signup", h.SignUp)
	users.Post("/login", h.Login)
	users.Post("/refresh-token", h.Refresh)
}
