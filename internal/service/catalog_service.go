package service

import (
	"context"
	"strconv"
	"time"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"

	"github.com/google/uuid"
)

// Categories

type CategoryService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Category], error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, req *CategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req *CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) (*model.Category, error)
}

type CategoryRequest struct {
	Name   string `json:"name" form:"name" validate:"omitempty,max=255"`
	Status string `json:"status" form:"status" validate:"omitempty,boolean"`
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context, page int) (repository.Paginated[model.Category], error) {
	res, err := s.categories.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *categoryService) Get(ctx context.Context, rawID string) (*model.Category, error) {
	id, err := parseID(rawID, "Category")
	if err != nil {
		return nil, err
	}
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Category")
	}
	return c, nil
}

func (s *categoryService) Create(ctx context.Context, req *CategoryRequest) (*model.Category, error) {
	errs := check(req)
	if req.Name == "" {
		errs.Add("name", "The name field is required.")
	}
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.categories.ExistsByName(ctx, req.Name, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	category := &model.Category{Name: req.Name, Status: parseBool(req.Status, true)}
	category.CreatedBy = actor(ctx)
	category.UpdatedBy = actor(ctx)
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperror.Persistence(err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, rawID string, req *CategoryRequest) (*model.Category, error) {
	category, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	errs := check(req)
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.categories.ExistsByName(ctx, req.Name, category.ID)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	category.Status = parseBool(req.Status, category.Status)
	category.UpdatedBy = actor(ctx)
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperror.Persistence(err)
	}
	return category, nil
}

// Delete refuses to remove a category that still has products
func (s *categoryService) Delete(ctx context.Context, rawID string) (*model.Category, error) {
	category, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	count, err := s.categories.CountProducts(ctx, category.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if count > 0 {
		return nil, apperror.BadRequest("Category with id " + category.ID.String() + " still has " + strconv.FormatInt(count, 10) + " products.")
	}
	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return nil, lookupError(err, "Category")
	}
	return category, nil
}

// Features

type FeatureService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Feature], error)
	Get(ctx context.Context, id string) (*model.Feature, error)
	Create(ctx context.Context, req *FeatureRequest) (*model.Feature, error)
	Update(ctx context.Context, id string, req *FeatureRequest) (*model.Feature, error)
	Delete(ctx context.Context, id string) (*model.Feature, error)
}

type FeatureRequest struct {
	Title string `json:"title" form:"title" validate:"omitempty,max=255"`
	Body  string `json:"body" form:"body"`
	Icon  string `json:"icon" form:"icon" validate:"omitempty,max=255"`
}

type featureService struct {
	features repository.FeatureRepository
}

func NewFeatureService(features repository.FeatureRepository) FeatureService {
	return &featureService{features: features}
}

func (s *featureService) List(ctx context.Context, page int) (repository.Paginated[model.Feature], error) {
	res, err := s.features.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *featureService) Get(ctx context.Context, rawID string) (*model.Feature, error) {
	id, err := parseID(rawID, "Feature")
	if err != nil {
		return nil, err
	}
	f, err := s.features.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Feature")
	}
	return f, nil
}

func (s *featureService) Create(ctx context.Context, req *FeatureRequest) (*model.Feature, error) {
	errs := check(req)
	for field, value := range map[string]string{"title": req.Title, "body": req.Body, "icon": req.Icon} {
		if value == "" {
			errs.Add(field, "The "+field+" field is required.")
		}
	}
	if err := unique(errs, "title", req.Title, func() (bool, error) {
		return s.features.ExistsByTitle(ctx, req.Title, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	feature := &model.Feature{Title: req.Title, Body: req.Body, Icon: req.Icon}
	feature.CreatedBy = actor(ctx)
	feature.UpdatedBy = actor(ctx)
	if err := s.features.Create(ctx, feature); err != nil {
		return nil, apperror.Persistence(err)
	}
	return feature, nil
}

func (s *featureService) Update(ctx context.Context, rawID string, req *FeatureRequest) (*model.Feature, error) {
	feature, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	errs := check(req)
	if err := unique(errs, "title", req.Title, func() (bool, error) {
		return s.features.ExistsByTitle(ctx, req.Title, feature.ID)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	if req.Title != "" {
		feature.Title = req.Title
	}
	if req.Body != "" {
		feature.Body = req.Body
	}
	if req.Icon != "" {
		feature.Icon = req.Icon
	}
	feature.UpdatedBy = actor(ctx)
	if err := s.features.Update(ctx, feature); err != nil {
		return nil, apperror.Persistence(err)
	}
	return feature, nil
}

func (s *featureService) Delete(ctx context.Context, rawID string) (*model.Feature, error) {
	feature, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.features.Delete(ctx, feature.ID); err != nil {
		return nil, lookupError(err, "Feature")
	}
	return feature, nil
}

// Coupons

type CouponService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Discount], error)
	Get(ctx context.Context, id string) (*model.Discount, error)
	Create(ctx context.Context, req *CouponRequest) (*model.Discount, error)
	Update(ctx context.Context, id string, req *CouponRequest) (*model.Discount, error)
	Delete(ctx context.Context, id string) (*model.Discount, error)
}

type CouponRequest struct {
	Code      string `json:"code" form:"code" validate:"omitempty,max=100"`
	Percent   string `json:"percent" form:"percent" validate:"omitempty,number"`
	ExpiresAt string `json:"expires_at" form:"expires_at" validate:"omitempty,datetime=2006/01/02 15:04:05"`
}

type couponService struct {
	coupons repository.DiscountRepository
	loc     *time.Location
}

func NewCouponService(coupons repository.DiscountRepository, loc *time.Location) CouponService {
	return &couponService{coupons: coupons, loc: loc}
}

func (s *couponService) List(ctx context.Context, page int) (repository.Paginated[model.Discount], error) {
	res, err := s.coupons.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *couponService) Get(ctx context.Context, rawID string) (*model.Discount, error) {
	id, err := parseID(rawID, "Coupon")
	if err != nil {
		return nil, err
	}
	d, err := s.coupons.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Coupon")
	}
	return d, nil
}

func (s *couponService) Create(ctx context.Context, req *CouponRequest) (*model.Discount, error) {
	errs := check(req)
	for field, value := range map[string]string{"code": req.Code, "percent": req.Percent, "expires_at": req.ExpiresAt} {
		if value == "" {
			errs.Add(field, "The "+labelOf(field)+" field is required.")
		}
	}
	if err := unique(errs, "code", req.Code, func() (bool, error) {
		return s.coupons.ExistsByCode(ctx, req.Code, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	percent, _ := strconv.Atoi(req.Percent)
	expiresAt, _ := parseDateTime(req.ExpiresAt, s.loc)
	coupon := &model.Discount{Code: req.Code, Percent: percent, ExpiresAt: *expiresAt}
	coupon.CreatedBy = actor(ctx)
	coupon.UpdatedBy = actor(ctx)
	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, apperror.Persistence(err)
	}
	return coupon, nil
}

func (s *couponService) Update(ctx context.Context, rawID string, req *CouponRequest) (*model.Discount, error) {
	coupon, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	errs := check(req)
	if err := unique(errs, "code", req.Code, func() (bool, error) {
		return s.coupons.ExistsByCode(ctx, req.Code, coupon.ID)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	if req.Code != "" {
		coupon.Code = req.Code
	}
	if req.Percent != "" {
		coupon.Percent, _ = strconv.Atoi(req.Percent)
	}
	if expiresAt, _ := parseDateTime(req.ExpiresAt, s.loc); expiresAt != nil {
		coupon.ExpiresAt = *expiresAt
	}
	coupon.UpdatedBy = actor(ctx)
	if err := s.coupons.Update(ctx, coupon); err != nil {
		return nil, apperror.Persistence(err)
	}
	return coupon, nil
}

func (s *couponService) Delete(ctx context.Context, rawID string) (*model.Discount, error) {
	coupon, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.coupons.Delete(ctx, coupon.ID); err != nil {
		return nil, lookupError(err, "Coupon")
	}
	return coupon, nil
}
