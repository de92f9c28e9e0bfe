package repository

import (
	"context"
	"time"

	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, page Page) (Paginated[model.Order], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status int) error
}

type orderRepo struct {
	crud[model.Order]
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{crud[model.Order]{db: db, preloads: []string{"Address", "Items.Product"}}}
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status int) error {
	res := r.conn(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	List(ctx context.Context, page Page) (Paginated[model.Transaction], error)
	// FindByStatusSince returns the transactions with status created at or after since
	FindByStatusSince(ctx context.Context, status int, since time.Time) ([]model.Transaction, error)
}

type transactionRepo struct {
	crud[model.Transaction]
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{crud[model.Transaction]{db: db}}
}

func (r *transactionRepo) FindByStatusSince(ctx context.Context, status int, since time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	// timestamps are compared in UTC so that SQLite's text comparison stays chronological
	err := r.conn(ctx).
		Where("status = ? AND created_at >= ?", status, since.UTC()).
		Order("created_at").
		Find(&txs).Error
	return txs, err
}
