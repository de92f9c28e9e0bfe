package handler

import (
	"strconv"

	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"
	"shop-admin-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders    service.OrderService
	presenter *Presenter
}

func NewOrderHandler(orders service.OrderService, presenter *Presenter) *OrderHandler {
	return &OrderHandler{orders: orders, presenter: presenter}
}

// GetOrders returns one page of orders with their address and items
// GET /api/orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	page, err := h.orders.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "orders", repository.Map(page, h.presenter.Order)))
}

// UpdateOrder sets the order status
// PUT /api/orders/:id
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	var req service.UpdateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	order, err := h.orders.UpdateStatus(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Order(order))
}

type TransactionHandler struct {
	transactions service.TransactionService
	presenter    *Presenter
}

func NewTransactionHandler(transactions service.TransactionService, presenter *Presenter) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, presenter: presenter}
}

// GET /api/transactions
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	page, err := h.transactions.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "transactions", repository.Map(page, h.presenter.Transaction)))
}

// GetChart returns the successful revenue per local month, oldest first
// GET /api/transactions/chart?months=12
func (h *TransactionHandler) GetChart(c *fiber.Ctx) error {
	months := 0
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return apperror.Field("months", "The months field must be an integer.")
		}
		months = n
		if months == 0 {
			return apperror.Field("months", "The months field must be between 1 and "+strconv.Itoa(service.MaxChartMonths)+".")
		}
	}

	buckets, err := h.transactions.Chart(c.UserContext(), months)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", buckets)
}
