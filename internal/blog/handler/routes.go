package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public blog routes and, behind the supplied
// authentication gate, the owner-only routes.
func RegisterRoutes(app *fiber.App, h *BlogHandler, requireAuth fiber.Handler) {
	blogs := app.Group("/api/v1/blogs")

	blogs.Get("/", h.ListPublished)

	blogs.Get("/user/blogs", requireAuth, h.ListMine)
	blogs.Post("/", requireAuth, h.Create)
	blogs.Patch("/:id/publish", requireAuth, h.Publish)
	blogs.Patch("/:id", requireAuth, h.Update)
	blogs.Delete("/:id", requireAuth, h.Delete)

	// Registered after /user/blogs so the public wildcard does not shadow it.
	blogs.Get("/:id", h.GetPublished)
}
