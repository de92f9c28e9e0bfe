package service

import (
	"context"
	"strconv"
	"time"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/ws"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Product], error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req *UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
}

type CreateProductRequest struct {
	Name           string `json:"name" form:"name" validate:"required,max=255"`
	CategoryID     string `json:"category_id" form:"category_id" validate:"required,uuid"`
	Description    string `json:"description" form:"description" validate:"required"`
	Price          string `json:"price" form:"price" validate:"required,numeric"`
	Quantity       string `json:"quantity" form:"quantity" validate:"required,number"`
	Status         string `json:"status" form:"status" validate:"omitempty,boolean"`
	SalePrice      string `json:"sale_price" form:"sale_price" validate:"omitempty,numeric"`
	DateOnSaleFrom string `json:"date_on_sale_from" form:"date_on_sale_from" validate:"omitempty,datetime=2006/01/02 15:04:05"`
	DateOnSaleTo   string `json:"date_on_sale_to" form:"date_on_sale_to" validate:"omitempty,datetime=2006/01/02 15:04:05"`

	PrimaryImage *attachment.Upload  `json:"-" form:"-" validate:"-"`
	Images       []attachment.Upload `json:"-" form:"-" validate:"-"`
}

// UpdateProductRequest replaces only the fields that are filled
type UpdateProductRequest struct {
	Name           string `json:"name" form:"name" validate:"omitempty,max=255"`
	CategoryID     string `json:"category_id" form:"category_id" validate:"omitempty,uuid"`
	Description    string `json:"description" form:"description"`
	Price          string `json:"price" form:"price" validate:"omitempty,numeric"`
	Quantity       string `json:"quantity" form:"quantity" validate:"omitempty,number"`
	Status         string `json:"status" form:"status" validate:"omitempty,boolean"`
	SalePrice      string `json:"sale_price" form:"sale_price" validate:"omitempty,numeric"`
	DateOnSaleFrom string `json:"date_on_sale_from" form:"date_on_sale_from" validate:"omitempty,datetime=2006/01/02 15:04:05"`
	DateOnSaleTo   string `json:"date_on_sale_to" form:"date_on_sale_to" validate:"omitempty,datetime=2006/01/02 15:04:05"`

	PrimaryImage *attachment.Upload  `json:"-" form:"-" validate:"-"`
	Images       []attachment.Upload `json:"-" form:"-" validate:"-"`
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	files      *attachment.Manager
	hub        *ws.Hub
	loc        *time.Location
	maxKB      int
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository,
	files *attachment.Manager, hub *ws.Hub, loc *time.Location, maxUploadKB int) ProductService {
	return &productService{
		products:   products,
		categories: categories,
		files:      files,
		hub:        hub,
		loc:        loc,
		maxKB:      maxUploadKB,
	}
}

func (s *productService) List(ctx context.Context, page int) (repository.Paginated[model.Product], error) {
	res, err := s.products.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *productService) Get(ctx context.Context, rawID string) (*model.Product, error) {
	id, err := parseID(rawID, "Product")
	if err != nil {
		return nil, err
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Product")
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error) {
	errs := check(req)
	if req.PrimaryImage == nil {
		errs.Add("primary_image", "The primary image field is required.")
	} else {
		checkImage(errs, "primary_image", req.PrimaryImage, s.maxKB)
	}
	for i := range req.Images {
		checkImage(errs, "images."+strconv.Itoa(i), &req.Images[i], s.maxKB)
	}
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.products.ExistsByName(ctx, req.Name, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	categoryID, err := s.checkCategory(ctx, errs, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	from, _ := parseDateTime(req.DateOnSaleFrom, s.loc)
	to, _ := parseDateTime(req.DateOnSaleTo, s.loc)
	quantity, _ := strconv.Atoi(req.Quantity)
	product := &model.Product{
		Name:           req.Name,
		Slug:           Slugify(req.Name),
		CategoryID:     categoryID,
		Description:    req.Description,
		Price:          decimal.RequireFromString(req.Price),
		Quantity:       quantity,
		Status:         parseBool(req.Status, true),
		DateOnSaleFrom: from,
		DateOnSaleTo:   to,
	}
	if req.SalePrice != "" {
		product.SalePrice = decimal.NewNullDecimal(decimal.RequireFromString(req.SalePrice))
	}
	product.CreatedBy = actor(ctx)
	product.UpdatedBy = actor(ctx)

	_, err = s.files.Create(ctx, req.PrimaryImage, req.Images, func(tx *gorm.DB, files attachment.Files) error {
		product.PrimaryImage = files.Primary
		repo := s.products.WithTx(tx)
		if err := repo.Create(ctx, product); err != nil {
			return err
		}
		return repo.ReplaceImages(ctx, product.ID, files.Gallery)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, lookupError(err, "Product")
	}
	s.hub.Publish("product.created", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

func (s *productService) Update(ctx context.Context, rawID string, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	errs := check(req)
	if req.PrimaryImage != nil {
		checkImage(errs, "primary_image", req.PrimaryImage, s.maxKB)
	}
	for i := range req.Images {
		checkImage(errs, "images."+strconv.Itoa(i), &req.Images[i], s.maxKB)
	}
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.products.ExistsByName(ctx, req.Name, product.ID)
	}); err != nil {
		return nil, err
	}
	categoryID, err := s.checkCategory(ctx, errs, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
		product.Slug = Slugify(req.Name)
	}
	if categoryID != uuid.Nil {
		product.CategoryID = categoryID
		product.Category = nil
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != "" {
		product.Price = decimal.RequireFromString(req.Price)
	}
	if req.Quantity != "" {
		product.Quantity, _ = strconv.Atoi(req.Quantity)
	}
	product.Status = parseBool(req.Status, product.Status)
	if req.SalePrice != "" {
		product.SalePrice = decimal.NewNullDecimal(decimal.RequireFromString(req.SalePrice))
	}
	if from, _ := parseDateTime(req.DateOnSaleFrom, s.loc); from != nil {
		product.DateOnSaleFrom = from
	}
	if to, _ := parseDateTime(req.DateOnSaleTo, s.loc); to != nil {
		product.DateOnSaleTo = to
	}
	product.UpdatedBy = actor(ctx)

	current := attachment.Files{Primary: product.PrimaryImage, Gallery: product.GalleryNames()}
	_, err = s.files.Update(ctx, current, req.PrimaryImage, req.Images, func(tx *gorm.DB, written attachment.Files) error {
		if written.Primary != "" {
			product.PrimaryImage = written.Primary
		}
		repo := s.products.WithTx(tx)
		if err := repo.Update(ctx, product); err != nil {
			return err
		}
		if written.Gallery != nil {
			return repo.ReplaceImages(ctx, product.ID, written.Gallery)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, lookupError(err, "Product")
	}
	s.hub.Publish("product.updated", map[string]interface{}{"id": updated.ID, "name": updated.Name})
	return updated, nil
}

// Delete removes the product files, then its gallery rows and the product row
func (s *productService) Delete(ctx context.Context, rawID string) (*model.Product, error) {
	product, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	current := attachment.Files{Primary: product.PrimaryImage, Gallery: product.GalleryNames()}
	err = s.files.Delete(ctx, current, func(tx *gorm.DB) error {
		repo := s.products.WithTx(tx)
		if err := repo.DeleteImages(ctx, product.ID); err != nil {
			return err
		}
		return repo.Delete(ctx, product.ID)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish("product.deleted", map[string]interface{}{"id": product.ID})
	return product, nil
}

// checkCategory validates that a filled category id names an existing category
func (s *productService) checkCategory(ctx context.Context, errs validator.Errors, raw string) (uuid.UUID, error) {
	if raw == "" || len(errs["category_id"]) > 0 {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		errs.Add("category_id", "The selected category id is invalid.")
		return uuid.Nil, nil
	}
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, apperror.Persistence(err)
	}
	if !ok {
		errs.Add("category_id", "The selected category id is invalid.")
		return uuid.Nil, nil
	}
	return id, nil
}
