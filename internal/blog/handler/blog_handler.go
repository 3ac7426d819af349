package handler

import (
	"github.com/gofiber/fiber/v2"

	blogdomain "github.com/Ademola7/BlogApi/internal/blog/domain"
	"github.com/Ademola7/BlogApi/internal/blog/dto"
	"github.com/Ademola7/BlogApi/internal/blog/service"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
	"github.com/Ademola7/BlogApi/internal/middleware"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPublished serves the public listing with search, sort and pagination.
func (h *BlogHandler) ListPublished(c *fiber.Ctx) error {
	q := blogdomain.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}

	blogs, err := h.blogService.ListPublished(c.Context(), q)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"results": len(blogs),
		"data":    dto.NewBlogOutputs(blogs),
	})
}

// GetPublished serves a single published blog and counts the read.
func (h *BlogHandler) GetPublished(c *fiber.Ctx) error {
	blog, author, err := h.blogService.GetPublished(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewBlogOutputWithAuthor(blog, author),
	})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("body", "invalid request body")
	}

	user := middleware.CurrentUser(c)
	blog, err := h.blogService.Create(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewBlogOutput(blog),
	})
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("body", "invalid request body")
	}

	user := middleware.CurrentUser(c)
	blog, err := h.blogService.Update(c.Context(), user.ID, c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewBlogOutput(blog),
	})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.blogService.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BlogHandler) Publish(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	blog, err := h.blogService.Publish(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Blog published successfully",
		"data":    dto.NewBlogOutput(blog),
	})
}

// ListMine serves every blog owned by the authenticated user, drafts included.
func (h *BlogHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	blogs, err := h.blogService.ListByAuthor(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"results": len(blogs),
		"data":    dto.NewBlogOutputs(blogs),
	})
}
