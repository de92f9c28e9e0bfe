package handler

import (
	"shop-admin-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every API handler for route registration
type Handlers struct {
	Auth         *AuthHandler
	Products     *ProductHandler
	Sliders      *SliderHandler
	Categories   *CategoryHandler
	Features     *FeatureHandler
	Coupons      *CouponHandler
	Content      *ContentHandler
	Orders       *OrderHandler
	Transactions *TransactionHandler
	Users        *UserHandler
	Roles        *RoleHandler
}

// Register mounts the API on router. requireAuth guards everything except login.
func (h *Handlers) Register(router fiber.Router, requireAuth fiber.Handler) {
	can := middleware.RequirePrivilege

	// ============ PUBLIC ROUTES ============
	router.Post("/login", h.Auth.Login)

	// ============ PROTECTED ROUTES ============
	api := router.Group("", requireAuth)
	api.Post("/logout", h.Auth.Logout)

	api.Get("/sliders", h.Sliders.GetSliders)
	api.Get("/sliders/:id", h.Sliders.GetSlider)
	api.Post("/sliders", can("slider:create"), h.Sliders.CreateSlider)
	api.Put("/sliders/:id", can("slider:update"), h.Sliders.UpdateSlider)
	api.Delete("/sliders/:id", can("slider:delete"), h.Sliders.DeleteSlider)

	api.Get("/features", h.Features.GetFeatures)
	api.Get("/features/:id", h.Features.GetFeature)
	api.Post("/features", can("feature:create"), h.Features.CreateFeature)
	api.Put("/features/:id", can("feature:update"), h.Features.UpdateFeature)
	api.Delete("/features/:id", can("feature:delete"), h.Features.DeleteFeature)

	api.Get("/categories", h.Categories.GetCategories)
	api.Get("/categories/:id", h.Categories.GetCategory)
	api.Post("/categories", can("category:create"), h.Categories.CreateCategory)
	api.Put("/categories/:id", can("category:update"), h.Categories.UpdateCategory)
	api.Delete("/categories/:id", can("category:delete"), h.Categories.DeleteCategory)

	api.Get("/products", h.Products.GetProducts)
	api.Get("/products/:id", h.Products.GetProduct)
	api.Post("/products", can("product:create"), h.Products.CreateProduct)
	api.Put("/products/:id", can("product:update"), h.Products.UpdateProduct)
	api.Delete("/products/:id", can("product:delete"), h.Products.DeleteProduct)

	api.Get("/coupons", h.Coupons.GetCoupons)
	api.Get("/coupons/:id", h.Coupons.GetCoupon)
	api.Post("/coupons", can("coupon:create"), h.Coupons.CreateCoupon)
	api.Put("/coupons/:id", can("coupon:update"), h.Coupons.UpdateCoupon)
	api.Delete("/coupons/:id", can("coupon:delete"), h.Coupons.DeleteCoupon)

	api.Get("/about-us", h.Content.GetAboutUs)
	api.Put("/about-us", can("content:update"), h.Content.UpdateAboutUs)
	api.Get("/footer", h.Content.GetFooter)
	api.Put("/footer", can("content:update"), h.Content.UpdateFooter)

	api.Get("/contact-us", can("contact:view"), h.Content.GetMessages)
	api.Get("/contact-us/:id", can("contact:view"), h.Content.GetMessage)
	api.Delete("/contact-us/:id", can("contact:delete"), h.Content.DeleteMessage)

	api.Get("/orders", can("order:view"), h.Orders.GetOrders)
	api.Put("/orders/:id", can("order:update"), h.Orders.UpdateOrder)

	api.Get("/transactions/chart", can("transaction:view"), h.Transactions.GetChart)
	api.Get("/transactions", can("transaction:view"), h.Transactions.GetTransactions)

	api.Get("/users", can("user:view"), h.Users.GetUsers)
	api.Get("/users/:id", can("user:view"), h.Users.GetUser)
	api.Post("/users", can("user:create"), h.Users.CreateUser)
	api.Put("/users/:id", can("user:update"), h.Users.UpdateUser)

	api.Get("/roles", can("role:view"), h.Roles.GetRoles)
	api.Post("/roles", can("role:create"), h.Roles.CreateRole)
	api.Put("/roles/:id", can("role:update"), h.Roles.UpdateRole)
}
