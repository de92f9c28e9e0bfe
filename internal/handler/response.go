package handler

import (
	"errors"
	"mime/multipart"
	"strconv"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the envelope of every API reply. Message is null when there is nothing to say.
type Response struct {
	Success bool        `json:"success"`
	Message *string     `json:"message"`
	Data    interface{} `json:"data"`
}

func messageOf(message string) *string {
	if message == "" {
		return nil
	}
	return &message
}

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Response{Success: true, Message: messageOf(message), Data: data})
}

// ErrorHandler renders every error returned by a handler or middleware into the envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error."
	var data interface{}

	var fe *fiber.Error
	if appErr, isApp := apperror.As(err); isApp {
		status = appErr.Status()
		message = appErr.Message
		if appErr.Kind == apperror.KindValidation {
			data = appErr.Fields
		}
		if status >= fiber.StatusInternalServerError {
			logger.FromContext(c.UserContext()).Error("request failed",
				zap.String("path", c.Path()), zap.Error(err))
		}
	} else if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	} else {
		logger.FromContext(c.UserContext()).Error("unhandled error",
			zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(Response{Success: false, Message: messageOf(message), Data: data})
}

// parseBody binds a JSON, urlencoded or multipart body. An empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperror.BadRequest("Invalid request body.")
	}
	return nil
}

func pageNumber(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

type pageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type pageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int64  `json:"total"`
}

// paginated builds {<key>: items, links, meta} for one page of a listing
func paginated[T any](c *fiber.Ctx, key string, p repository.Paginated[T]) fiber.Map {
	path := c.BaseURL() + c.Path()
	pageURL := func(n int) string { return path + "?page=" + strconv.Itoa(n) }

	links := pageLinks{First: pageURL(1), Last: pageURL(p.LastPage())}
	if p.Page > 1 {
		prev := pageURL(p.Page - 1)
		links.Prev = &prev
	}
	if p.Page < p.LastPage() {
		next := pageURL(p.Page + 1)
		links.Next = &next
	}

	items := p.Items
	if items == nil {
		items = []T{}
	}
	return fiber.Map{
		key:     items,
		"links": links,
		"meta": pageMeta{
			CurrentPage: p.Page,
			From:        p.From(),
			LastPage:    p.LastPage(),
			Path:        path,
			PerPage:     p.PerPage,
			To:          p.To(),
			Total:       p.Total,
		},
	}
}

// formFiles returns the uploads sent under field (or field[]) of a multipart body
func formFiles(c *fiber.Ctx, field string) []attachment.Upload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var headers []*multipart.FileHeader
	headers = append(headers, form.File[field]...)
	headers = append(headers, form.File[field+"[]"]...)
	if len(headers) == 0 {
		return nil
	}
	uploads := make([]attachment.Upload, len(headers))
	for i, fh := range headers {
		uploads[i] = attachment.FromMultipart(fh)
	}
	return uploads
}

// formFile returns the single upload sent under field, if any
func formFile(c *fiber.Ctx, field string) *attachment.Upload {
	files := formFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

func deleted(resource, id string) string {
	return resource + " with id " + id + " has been deleted."
}
