package handler

import (
	"shop-admin-api/internal/middleware"
	"shop-admin-api/internal/service"
	"shop-admin-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user authentication
// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "You have successfully logged in.", response)
}

// Logout revokes every token of the current user
// POST /api/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperror.Auth(service.ErrUnauthenticated)
	}

	if err := h.authService.Logout(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "You have successfully logged out.", nil)
}
