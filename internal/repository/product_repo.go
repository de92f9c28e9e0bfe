package repository

import (
	"context"

	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, page Page) (Paginated[model.Product], error)
	ExistsByName(ctx context.Context, name string, except uuid.UUID) (bool, error)
	// ReplaceImages drops every gallery row of the product and inserts one per name
	ReplaceImages(ctx context.Context, productID uuid.UUID, images []string) error
	DeleteImages(ctx context.Context, productID uuid.UUID) error
}

type productRepo struct {
	crud[model.Product]
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{crud[model.Product]{db: db, preloads: []string{"Category", "Images"}}}
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{r.with(tx)}
}

func (r *productRepo) ExistsByName(ctx context.Context, name string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "name", name, except)
}

func (r *productRepo) ReplaceImages(ctx context.Context, productID uuid.UUID, images []string) error {
	if err := r.DeleteImages(ctx, productID); err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	rows := make([]model.ProductImage, len(images))
	for i, img := range images {
		rows[i] = model.ProductImage{ProductID: productID, Image: img}
	}
	return r.conn(ctx).Create(&rows).Error
}

func (r *productRepo) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	return r.conn(ctx).Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error
}
