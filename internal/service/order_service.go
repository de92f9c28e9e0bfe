package service

import (
	"context"
	"strconv"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/ws"
	"shop-admin-api/pkg/apperror"
)

type OrderService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Order], error)
	UpdateStatus(ctx context.Context, id string, req *UpdateOrderRequest) (*model.Order, error)
}

type UpdateOrderRequest struct {
	Status string `json:"status" form:"status" validate:"required,number"`
}

type orderService struct {
	orders repository.OrderRepository
	hub    *ws.Hub
}

func NewOrderService(orders repository.OrderRepository, hub *ws.Hub) OrderService {
	return &orderService{orders: orders, hub: hub}
}

func (s *orderService) List(ctx context.Context, page int) (repository.Paginated[model.Order], error) {
	res, err := s.orders.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, rawID string, req *UpdateOrderRequest) (*model.Order, error) {
	id, err := parseID(rawID, "Order")
	if err != nil {
		return nil, err
	}
	if err := failed(check(req)); err != nil {
		return nil, err
	}
	status, err := strconv.Atoi(req.Status)
	if err != nil {
		return nil, apperror.Field("status", "The status field must be an integer.")
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, lookupError(err, "Order")
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Order")
	}

	s.hub.Publish("order.updated", map[string]interface{}{"id": order.ID, "status": order.Status})
	return order, nil
}
