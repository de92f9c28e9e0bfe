package handler

import (
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users     service.UserService
	presenter *Presenter
}

func NewUserHandler(users service.UserService, presenter *Presenter) *UserHandler {
	return &UserHandler{users: users, presenter: presenter}
}

// GetUsers returns one page of users
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	page, err := h.users.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "users", repository.Map(page, h.presenter.User)))
}

// GetUser returns a single user by ID
// GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.User(user))
}

// CreateUser creates a new user and attaches the named roles
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.users.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", h.presenter.User(user))
}

// UpdateUser updates the filled fields and syncs roles when given
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req service.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.users.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.User(user))
}
