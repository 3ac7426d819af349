package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ademola7/BlogApi/internal/auth/dto"
	"github.com/Ademola7/BlogApi/internal/auth/service"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("body", "invalid request body")
	}

	user, err := h.userService.SignUp(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("body", "invalid request body")
	}

	user, tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Login successful",
		"user":         dto.NewUserOutput(user),
		"token":        tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("body", "invalid request body")
	}

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}
