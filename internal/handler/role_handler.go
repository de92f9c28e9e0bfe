package handler

import (
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roles service.RoleService
}

func NewRoleHandler(roles service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GetRoles returns all roles with their privilege codes
// GET /api/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roles.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]model.RoleResponse, len(roles))
	for i := range roles {
		out[i] = roles[i].ToResponse()
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"roles": out})
}

// POST /api/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.RoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	role, err := h.roles.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", role.ToResponse())
}

// PUT /api/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	var req service.RoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	role, err := h.roles.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", role.ToResponse())
}
