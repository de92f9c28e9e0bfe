package repository

import (
	"context"
	"errors"

	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository stores the about-us and footer singletons
type ContentRepository interface {
	AboutUs(ctx context.Context) (*model.AboutUs, error)
	SaveAboutUs(ctx context.Context, about *model.AboutUs) error
	Footer(ctx context.Context) (*model.Footer, error)
	SaveFooter(ctx context.Context, footer *model.Footer) error
	// SeedDefaults creates empty singleton rows when missing
	SeedDefaults(ctx context.Context) error
}

type contentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) AboutUs(ctx context.Context) (*model.AboutUs, error) {
	var about model.AboutUs
	if err := r.db.WithContext(ctx).Order("created_at").First(&about).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *contentRepo) SaveAboutUs(ctx context.Context, about *model.AboutUs) error {
	return r.db.WithContext(ctx).Save(about).Error
}

func (r *contentRepo) Footer(ctx context.Context) (*model.Footer, error) {
	var footer model.Footer
	if err := r.db.WithContext(ctx).Order("created_at").First(&footer).Error; err != nil {
		return nil, err
	}
	return &footer, nil
}

func (r *contentRepo) SaveFooter(ctx context.Context, footer *model.Footer) error {
	return r.db.WithContext(ctx).Save(footer).Error
}

func (r *contentRepo) SeedDefaults(ctx context.Context) error {
	if _, err := r.AboutUs(ctx); errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&model.AboutUs{Title: "About us"}).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	if _, err := r.Footer(ctx); errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&model.Footer{Title: "Contact us"}).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return nil
}

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactUs) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContactUs, error)
	List(ctx context.Context, page Page) (Paginated[model.ContactUs], error)
}

type contactRepo struct {
	crud[model.ContactUs]
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{crud[model.ContactUs]{db: db}}
}
