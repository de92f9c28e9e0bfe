package handler

import (
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categories service.CategoryService
	presenter  *Presenter
}

func NewCategoryHandler(categories service.CategoryService, presenter *Presenter) *CategoryHandler {
	return &CategoryHandler{categories: categories, presenter: presenter}
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	page, err := h.categories.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "categories", repository.Map(page, h.presenter.Category)))
}

// GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Category(category))
}

// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", h.presenter.Category(category))
}

// PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Category(category))
}

// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	category, err := h.categories.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Category", category.ID.String()), nil)
}

type FeatureHandler struct {
	features service.FeatureService
}

func NewFeatureHandler(features service.FeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

// GET /api/features
func (h *FeatureHandler) GetFeatures(c *fiber.Ctx) error {
	page, err := h.features.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "features", page))
}

// GET /api/features/:id
func (h *FeatureHandler) GetFeature(c *fiber.Ctx) error {
	feature, err := h.features.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", feature)
}

// POST /api/features
func (h *FeatureHandler) CreateFeature(c *fiber.Ctx) error {
	var req service.FeatureRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	feature, err := h.features.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", feature)
}

// PUT /api/features/:id
func (h *FeatureHandler) UpdateFeature(c *fiber.Ctx) error {
	var req service.FeatureRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	feature, err := h.features.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", feature)
}

// DELETE /api/features/:id
func (h *FeatureHandler) DeleteFeature(c *fiber.Ctx) error {
	feature, err := h.features.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Feature", feature.ID.String()), nil)
}

type CouponHandler struct {
	coupons   service.CouponService
	presenter *Presenter
}

func NewCouponHandler(coupons service.CouponService, presenter *Presenter) *CouponHandler {
	return &CouponHandler{coupons: coupons, presenter: presenter}
}

// GET /api/coupons
func (h *CouponHandler) GetCoupons(c *fiber.Ctx) error {
	page, err := h.coupons.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "coupons", repository.Map(page, h.presenter.Coupon)))
}

// GET /api/coupons/:id
func (h *CouponHandler) GetCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupons.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Coupon(coupon))
}

// POST /api/coupons
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var req service.CouponRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	coupon, err := h.coupons.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", h.presenter.Coupon(coupon))
}

// PUT /api/coupons/:id
func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	var req service.CouponRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	coupon, err := h.coupons.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Coupon(coupon))
}

// DELETE /api/coupons/:id
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupons.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Discount", coupon.ID.String()), nil)
}
