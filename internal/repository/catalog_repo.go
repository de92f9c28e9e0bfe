package repository

import (
	"context"

	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SliderRepository interface {
	WithTx(tx *gorm.DB) SliderRepository
	Create(ctx context.Context, slider *model.Slider) error
	Update(ctx context.Context, slider *model.Slider) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Slider, error)
	List(ctx context.Context, page Page) (Paginated[model.Slider], error)
	ExistsByTitle(ctx context.Context, title string, except uuid.UUID) (bool, error)
}

type sliderRepo struct {
	crud[model.Slider]
}

func NewSliderRepo(db *gorm.DB) SliderRepository {
	return &sliderRepo{crud[model.Slider]{db: db}}
}

func (r *sliderRepo) WithTx(tx *gorm.DB) SliderRepository {
	return &sliderRepo{r.with(tx)}
}

func (r *sliderRepo) ExistsByTitle(ctx context.Context, title string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "title", title, except)
}

type FeatureRepository interface {
	Create(ctx context.Context, feature *model.Feature) error
	Update(ctx context.Context, feature *model.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Feature, error)
	List(ctx context.Context, page Page) (Paginated[model.Feature], error)
	ExistsByTitle(ctx context.Context, title string, except uuid.UUID) (bool, error)
}

type featureRepo struct {
	crud[model.Feature]
}

func NewFeatureRepo(db *gorm.DB) FeatureRepository {
	return &featureRepo{crud[model.Feature]{db: db}}
}

func (r *featureRepo) ExistsByTitle(ctx context.Context, title string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "title", title, except)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, page Page) (Paginated[model.Category], error)
	ExistsByName(ctx context.Context, name string, except uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)
}

type categoryRepo struct {
	crud[model.Category]
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{crud[model.Category]{db: db, preloads: []string{"Products"}}}
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "name", name, except)
}

func (r *categoryRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, "id", id, uuid.Nil)
}

func (r *categoryRepo) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&model.Product{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

type DiscountRepository interface {
	Create(ctx context.Context, discount *model.Discount) error
	Update(ctx context.Context, discount *model.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Discount, error)
	List(ctx context.Context, page Page) (Paginated[model.Discount], error)
	ExistsByCode(ctx context.Context, code string, except uuid.UUID) (bool, error)
}

type discountRepo struct {
	crud[model.Discount]
}

func NewDiscountRepo(db *gorm.DB) DiscountRepository {
	return &discountRepo{crud[model.Discount]{db: db}}
}

func (r *discountRepo) ExistsByCode(ctx context.Context, code string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "code", code, except)
}
