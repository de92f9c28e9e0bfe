package handler

import (
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products  service.ProductService
	presenter *Presenter
}

func NewProductHandler(products service.ProductService, presenter *Presenter) *ProductHandler {
	return &ProductHandler{products: products, presenter: presenter}
}

// GetProducts returns one page of products, newest first
// GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, err := h.products.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "products", repository.Map(page, h.presenter.Product)))
}

// GetProduct returns one product with its category and gallery
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Product(product))
}

// CreateProduct stores a product with its primary image and optional gallery (multipart)
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.PrimaryImage = formFile(c, "primary_image")
	req.Images = formFiles(c, "images")

	product, err := h.products.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", h.presenter.Product(product))
}

// UpdateProduct replaces the filled fields; a new gallery replaces the whole gallery
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var req service.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.PrimaryImage = formFile(c, "primary_image")
	req.Images = formFiles(c, "images")

	product, err := h.products.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Product(product))
}

// DeleteProduct removes the product, its gallery and every stored file
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.products.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Product", product.ID.String()), nil)
}

type SliderHandler struct {
	sliders   service.SliderService
	presenter *Presenter
}

func NewSliderHandler(sliders service.SliderService, presenter *Presenter) *SliderHandler {
	return &SliderHandler{sliders: sliders, presenter: presenter}
}

// GET /api/sliders
func (h *SliderHandler) GetSliders(c *fiber.Ctx) error {
	page, err := h.sliders.List(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "sliders", repository.Map(page, h.presenter.Slider)))
}

// GET /api/sliders/:id
func (h *SliderHandler) GetSlider(c *fiber.Ctx) error {
	slider, err := h.sliders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Slider(slider))
}

// POST /api/sliders
func (h *SliderHandler) CreateSlider(c *fiber.Ctx) error {
	var req service.CreateSliderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.Image = formFile(c, "image")

	slider, err := h.sliders.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "", h.presenter.Slider(slider))
}

// PUT /api/sliders/:id
func (h *SliderHandler) UpdateSlider(c *fiber.Ctx) error {
	var req service.UpdateSliderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.Image = formFile(c, "image")

	slider, err := h.sliders.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", h.presenter.Slider(slider))
}

// DELETE /api/sliders/:id
func (h *SliderHandler) DeleteSlider(c *fiber.Ctx) error {
	slider, err := h.sliders.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Slider", slider.ID.String()), nil)
}

