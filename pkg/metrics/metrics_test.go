package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsRouteAndStatus(t *testing.T) {
	m := New("shop-admin-api", prometheus.NewRegistry())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := apperror.As(err); ok {
				return c.SendStatus(appErr.Status())
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Use(m.Middleware())
	app.Get("/products/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "missing" {
			return apperror.NotFound("Product not found.")
		}
		return c.SendString("ok")
	})

	for _, path := range []string{"/products/1", "/products/2", "/products/missing"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("shop-admin-api", "GET", "/products/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("shop-admin-api", "GET", "/products/:id", "404")))
}

func TestMediaOpOutcome(t *testing.T) {
	m := New("shop-admin-api", prometheus.NewRegistry())
	m.MediaOp("put", nil)
	m.MediaOp("put", errors.New("disk full"))
	m.MediaOp("delete", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("shop-admin-api", "put", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("shop-admin-api", "delete", "ok")))

	var nilMetrics *HTTPMetrics
	assert.NotPanics(t, func() { nilMetrics.MediaOp("put", nil) })
}
