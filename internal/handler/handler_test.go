package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/cache"
	"shop-admin-api/internal/calendar"
	"shop-admin-api/internal/middleware"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"
	"shop-admin-api/internal/testutil"
	"shop-admin-api/pkg/database"
	"shop-admin-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type HandlerSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func (s *HandlerSuite) SetupTest() {
	t := s.T()
	s.db = testutil.NewDB(t)
	db := s.db

	privileges := repository.NewPrivilegeRepo(db)
	require.NoError(t, privileges.SeedDefaults(t.Context()))
	all, err := privileges.FindAll(t.Context())
	require.NoError(t, err)

	admin := model.Role{Name: model.RoleAdmin, Privileges: all}
	viewer := model.Role{Name: "viewer"}
	testutil.MustCreate(t, db, &admin, &viewer)
	s.createUser("admin@example.com", admin)
	s.createUser("viewer@example.com", viewer)

	tehran := calendar.LoadLocation("Asia/Tehran")
	cal := calendar.NewJalali(tehran)
	store := testutil.NewMemoryStore()
	tx := database.NewTransactor(db)
	productFiles := attachment.NewManager(store, tx, "images/products", nil)
	sliderFiles := attachment.NewManager(store, tx, "images/sliders", nil)
	presenter := NewPresenter(productFiles, sliderFiles, cal, nil)

	users := repository.NewUserRepo(db)
	categories := repository.NewCategoryRepo(db)
	authService := service.NewAuthService(users, jwt.NewIssuer("test-secret", time.Hour, "shop-admin-api"))

	transactions := service.NewTransactionService(repository.NewTransactionRepo(db), cal,
		cache.NewMemoryChartCache(time.Now), service.ChartOptions{Months: 12}, nil)
	products := service.NewProductService(repository.NewProductRepo(db), categories, productFiles, nil, tehran, 1024)

	h := &Handlers{
		Auth:         NewAuthHandler(authService),
		Products:     NewProductHandler(products, presenter),
		Sliders:      NewSliderHandler(service.NewSliderService(repository.NewSliderRepo(db), sliderFiles, nil, 1024), presenter),
		Categories:   NewCategoryHandler(service.NewCategoryService(categories), presenter),
		Features:     NewFeatureHandler(service.NewFeatureService(repository.NewFeatureRepo(db))),
		Coupons:      NewCouponHandler(service.NewCouponService(repository.NewDiscountRepo(db), tehran), presenter),
		Content:      NewContentHandler(service.NewContentService(repository.NewContentRepo(db), repository.NewContactRepo(db))),
		Orders:       NewOrderHandler(service.NewOrderService(repository.NewOrderRepo(db), nil), presenter),
		Transactions: NewTransactionHandler(transactions, presenter),
		Users:        NewUserHandler(service.NewUserService(users, repository.NewRoleRepo(db), tx), presenter),
		Roles:        NewRoleHandler(service.NewRoleService(repository.NewRoleRepo(db), privileges)),
	}

	s.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h.Register(s.app.Group("/api"), middleware.RequireAuth(authService))
}

func (s *HandlerSuite) createUser(email string, role model.Role) {
	user := &model.User{Name: "User " + email, Email: email, Roles: []model.Role{role}}
	s.Require().NoError(user.SetPassword("secret123"))
	testutil.MustCreate(s.T(), s.db, user)
}

func (s *HandlerSuite) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var out map[string]interface{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (s *HandlerSuite) login(email string) string {
	status, body := s.do(http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": "secret123"})
	s.Require().Equal(http.StatusOK, status, body)
	return body["data"].(map[string]interface{})["token"].(string)
}

func (s *HandlerSuite) TestLoginEnvelope() {
	status, body := s.do(http.MethodPost, "/api/login", "", map[string]string{"email": "admin@example.com", "password": "secret123"})

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	s.Equal("You have successfully logged in.", body["message"])
	data := body["data"].(map[string]interface{})
	s.Equal("Bearer", data["type"])
	s.NotEmpty(data["token"])
}

func (s *HandlerSuite) TestLoginValidationEnvelope() {
	status, body := s.do(http.MethodPost, "/api/login", "", map[string]string{"email": "nope"})

	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal(false, body["success"])
	fields := body["data"].(map[string]interface{})
	s.Contains(fields, "email")
	s.Contains(fields, "password")
}

func (s *HandlerSuite) TestLoginWrongPassword() {
	status, body := s.do(http.MethodPost, "/api/login", "", map[string]string{"email": "admin@example.com", "password": "wrong-password"})

	s.Equal(http.StatusUnauthorized, status)
	s.Equal("Invalid password", body["message"])
}

func (s *HandlerSuite) TestProtectedRoutesNeedToken() {
	status, body := s.do(http.MethodGet, "/api/categories", "", nil)

	s.Equal(http.StatusUnauthorized, status)
	s.Equal(service.ErrUnauthenticated, body["message"])
	s.Nil(body["data"])
}

func (s *HandlerSuite) TestMissingPrivilegeIsForbidden() {
	token := s.login("viewer@example.com")

	status, _ := s.do(http.MethodGet, "/api/categories", token, nil)
	s.Equal(http.StatusOK, status)

	status, body := s.do(http.MethodPost, "/api/categories", token, map[string]string{"name": "Lamps"})
	s.Equal(http.StatusForbidden, status)
	s.Equal(false, body["success"])
}

func (s *HandlerSuite) TestCategoryPagination() {
	token := s.login("admin@example.com")
	for i := 1; i <= 6; i++ {
		status, body := s.do(http.MethodPost, "/api/categories", token, map[string]string{"name": fmt.Sprintf("Category %d", i)})
		s.Require().Equal(http.StatusCreated, status, body)
	}

	status, body := s.do(http.MethodGet, "/api/categories?page=2", token, nil)
	s.Require().Equal(http.StatusOK, status)

	s.Contains(body, "message")
	s.Nil(body["message"], "a reply without a message carries null")
	data := body["data"].(map[string]interface{})
	s.Len(data["categories"], 1)

	meta := data["meta"].(map[string]interface{})
	s.EqualValues(2, meta["current_page"])
	s.EqualValues(2, meta["last_page"])
	s.EqualValues(5, meta["per_page"])
	s.EqualValues(6, meta["from"])
	s.EqualValues(6, meta["to"])
	s.EqualValues(6, meta["total"])

	links := data["links"].(map[string]interface{})
	s.Contains(links["prev"], "?page=1")
	s.Nil(links["next"])
}

func (s *HandlerSuite) TestDeleteMessageAndNotFound() {
	token := s.login("admin@example.com")
	status, body := s.do(http.MethodPost, "/api/categories", token, map[string]string{"name": "Lamps"})
	s.Require().Equal(http.StatusCreated, status)
	id := body["data"].(map[string]interface{})["id"].(string)

	status, body = s.do(http.MethodDelete, "/api/categories/"+id, token, nil)
	s.Equal(http.StatusOK, status)
	s.Equal("Category with id "+id+" has been deleted.", body["message"])
	s.Contains(body, "data")
	s.Nil(body["data"])

	status, _ = s.do(http.MethodGet, "/api/categories/"+id, token, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *HandlerSuite) TestDeleteProductReturnsNullData() {
	token := s.login("admin@example.com")
	category := model.Category{Name: "Chairs", Status: true}
	testutil.MustCreate(s.T(), s.db, &category)
	product := model.Product{Name: "Stool", CategoryID: category.ID, Price: decimal.NewFromInt(10), Quantity: 1}
	testutil.MustCreate(s.T(), s.db, &product)

	status, body := s.do(http.MethodDelete, "/api/products/"+product.ID.String(), token, nil)
	s.Require().Equal(http.StatusOK, status, body)
	s.Equal("Product with id "+product.ID.String()+" has been deleted.", body["message"])
	s.Contains(body, "data")
	s.Nil(body["data"])
}

func (s *HandlerSuite) TestChartDefaultsToTwelveBuckets() {
	token := s.login("admin@example.com")

	status, body := s.do(http.MethodGet, "/api/transactions/chart", token, nil)
	s.Require().Equal(http.StatusOK, status)
	buckets := body["data"].([]interface{})
	s.Len(buckets, 12)
	first := buckets[0].(map[string]interface{})
	s.Contains(first, "month")
	s.EqualValues(0, first["value"])

	status, body = s.do(http.MethodGet, "/api/transactions/chart?months=3", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Len(body["data"], 3)

	for _, bad := range []string{"abc", "0", "25"} {
		status, body = s.do(http.MethodGet, "/api/transactions/chart?months="+bad, token, nil)
		s.Equal(http.StatusUnprocessableEntity, status, bad)
		s.Contains(body["data"], "months")
	}
}

func (s *HandlerSuite) TestLogoutRevokesToken() {
	token := s.login("admin@example.com")

	status, body := s.do(http.MethodPost, "/api/logout", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("You have successfully logged out.", body["message"])

	status, _ = s.do(http.MethodGet, "/api/categories", token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func TestErrorHandlerFallsBackTo500(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return io.ErrUnexpectedEOF })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	require.NotNil(t, body.Message)
	assert.Equal(t, "short and stout", *body.Message)
	assert.False(t, body.Success)
}
