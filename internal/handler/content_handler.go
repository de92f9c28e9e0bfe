package handler

import (
	"shop-admin-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the about-us and footer singletons and the customer messages
type ContentHandler struct {
	content service.ContentService
}

func NewContentHandler(content service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GET /api/about-us
func (h *ContentHandler) GetAboutUs(c *fiber.Ctx) error {
	about, err := h.content.AboutUs(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", about)
}

// PUT /api/about-us
func (h *ContentHandler) UpdateAboutUs(c *fiber.Ctx) error {
	var req service.AboutUsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	about, err := h.content.UpdateAboutUs(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", about)
}

// GET /api/footer
func (h *ContentHandler) GetFooter(c *fiber.Ctx) error {
	footer, err := h.content.Footer(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", footer)
}

// PUT /api/footer
func (h *ContentHandler) UpdateFooter(c *fiber.Ctx) error {
	var req service.FooterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	footer, err := h.content.UpdateFooter(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", footer)
}

// GET /api/contact-us
func (h *ContentHandler) GetMessages(c *fiber.Ctx) error {
	page, err := h.content.ListMessages(c.UserContext(), pageNumber(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", paginated(c, "customer messages", page))
}

// GET /api/contact-us/:id
func (h *ContentHandler) GetMessage(c *fiber.Ctx) error {
	msg, err := h.content.GetMessage(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", msg)
}

// DELETE /api/contact-us/:id
func (h *ContentHandler) DeleteMessage(c *fiber.Ctx) error {
	msg, err := h.content.DeleteMessage(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, deleted("Customer message", msg.ID.String()), nil)
}
