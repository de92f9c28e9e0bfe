package service

import (
	"context"
	"testing"
	"time"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/media"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/testutil"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/database"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	store    *testutil.MemoryStore
	service  ProductService
	category model.Category
	ctx      context.Context
}

func (s *ProductServiceSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.store = testutil.NewMemoryStore()
	s.ctx = WithActor(context.Background(), "tester")

	files := attachment.NewManager(s.store, database.NewTransactor(s.db), "images/products", media.NewNamer(time.Now))
	s.service = NewProductService(repository.NewProductRepo(s.db), repository.NewCategoryRepo(s.db), files, nil, time.UTC, 1024)

	s.category = model.Category{Name: "Chairs", Status: true}
	testutil.MustCreate(s.T(), s.db, &s.category)
}

func (s *ProductServiceSuite) validRequest(name string) *CreateProductRequest {
	primary := pngUpload("front.png")
	return &CreateProductRequest{
		Name:         name,
		CategoryID:   s.category.ID.String(),
		Description:  "A sturdy chair",
		Price:        "1250000",
		Quantity:     "4",
		PrimaryImage: &primary,
	}
}

func (s *ProductServiceSuite) count(table interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(table).Count(&n).Error)
	return n
}

func (s *ProductServiceSuite) TestCreateWritesFilesThenRows() {
	req := s.validRequest("Wooden Chair")
	req.Images = []attachment.Upload{pngUpload("side.png"), pngUpload("back.png")}
	req.SalePrice = "1000000"
	req.DateOnSaleFrom = "2024/01/01 00:00:00"
	req.DateOnSaleTo = "2024/02/01 00:00:00"

	product, err := s.service.Create(s.ctx, req)
	s.Require().NoError(err)

	s.Equal("wooden-chair", product.Slug)
	s.True(product.Status)
	s.Equal("tester", product.CreatedBy)
	s.Require().NotNil(product.Category)
	s.Equal("Chairs", product.Category.Name)
	s.Len(product.Images, 2)
	s.Equal("front.png", media.OriginalName(product.PrimaryImage))
	s.Require().NotNil(product.DateOnSaleFrom)
	s.True(product.DateOnSaleFrom.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.True(product.SalePrice.Valid)

	s.Len(s.store.Keys(), 3)
	for _, name := range append(product.GalleryNames(), product.PrimaryImage) {
		ok, err := s.store.Exists(s.ctx, "images/products/"+name)
		s.Require().NoError(err)
		s.True(ok, name)
	}
}

func (s *ProductServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.ctx, &CreateProductRequest{Price: "abc", DateOnSaleFrom: "01-01-2024"})
	fields := requireFields(s.T(), err, "name", "category_id", "description", "price", "quantity", "primary_image", "date_on_sale_from")
	s.Equal([]string{"The primary image field is required."}, fields["primary_image"])
	s.Empty(s.store.Keys())
	s.Zero(s.count(&model.Product{}))
}

func (s *ProductServiceSuite) TestCreateRejectsNonImages() {
	req := s.validRequest("Wooden Chair")
	req.Images = []attachment.Upload{pngUpload("ok.png"), textUpload("notes.txt")}

	_, err := s.service.Create(s.ctx, req)
	fields := requireFields(s.T(), err, "images.1")
	s.NotContains(fields, "images.0")
	s.Empty(s.store.Keys())
}

func (s *ProductServiceSuite) TestCreateRejectsDuplicateNameAndUnknownCategory() {
	_, err := s.service.Create(s.ctx, s.validRequest("Wooden Chair"))
	s.Require().NoError(err)

	req := s.validRequest("Wooden Chair")
	req.CategoryID = "5b0c8a52-8c1b-4a59-9d38-2f0a4c9b7e11"
	_, err = s.service.Create(s.ctx, req)
	fields := requireFields(s.T(), err, "name", "category_id")
	s.Equal([]string{"The name has already been taken."}, fields["name"])
	s.Equal([]string{"The selected category id is invalid."}, fields["category_id"])
	s.Len(s.store.Keys(), 1)
}

func (s *ProductServiceSuite) TestCreateStorageFailureLeavesNothing() {
	s.store.FailPutAfter = 1
	req := s.validRequest("Wooden Chair")
	req.Images = []attachment.Upload{pngUpload("side.png")}

	_, err := s.service.Create(s.ctx, req)
	s.True(apperror.Is(err, apperror.KindStorage), "got %v", err)
	s.Empty(s.store.Keys())
	s.Zero(s.count(&model.Product{}))
}

func (s *ProductServiceSuite) TestUpdateKeepsUnfilledFields() {
	created, err := s.service.Create(s.ctx, s.validRequest("Wooden Chair"))
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, created.ID.String(), &UpdateProductRequest{Quantity: "9", Status: "0"})
	s.Require().NoError(err)

	s.Equal("Wooden Chair", updated.Name)
	s.Equal(9, updated.Quantity)
	s.False(updated.Status)
	s.True(updated.Price.Equal(created.Price))
	s.Equal(created.PrimaryImage, updated.PrimaryImage)
	s.Len(s.store.Keys(), 1)
}

func (s *ProductServiceSuite) TestUpdateReplacesWholeGallery() {
	req := s.validRequest("Wooden Chair")
	req.Images = []attachment.Upload{pngUpload("a.png"), pngUpload("b.png")}
	created, err := s.service.Create(s.ctx, req)
	s.Require().NoError(err)
	oldGallery := created.GalleryNames()

	updated, err := s.service.Update(s.ctx, created.ID.String(), &UpdateProductRequest{
		Images: []attachment.Upload{pngUpload("c.png")},
	})
	s.Require().NoError(err)

	s.Len(updated.Images, 1)
	s.Equal("c.png", media.OriginalName(updated.Images[0].Image))
	s.Equal(created.PrimaryImage, updated.PrimaryImage)
	for _, name := range oldGallery {
		ok, _ := s.store.Exists(s.ctx, "images/products/"+name)
		s.False(ok, "old gallery file %s should be removed", name)
	}
	s.Len(s.store.Keys(), 2)
	s.EqualValues(1, s.count(&model.ProductImage{}))
}

func (s *ProductServiceSuite) TestUpdateReplacesPrimary() {
	created, err := s.service.Create(s.ctx, s.validRequest("Wooden Chair"))
	s.Require().NoError(err)

	primary := pngUpload("new-front.png")
	updated, err := s.service.Update(s.ctx, created.ID.String(), &UpdateProductRequest{PrimaryImage: &primary})
	s.Require().NoError(err)

	s.NotEqual(created.PrimaryImage, updated.PrimaryImage)
	s.Equal([]string{"images/products/" + updated.PrimaryImage}, s.store.Keys())
}

func (s *ProductServiceSuite) TestUpdateUnknownProduct() {
	_, err := s.service.Update(s.ctx, "9f8c2a4e-1111-4c3b-9d00-aaaaaaaaaaaa", &UpdateProductRequest{})
	s.True(apperror.Is(err, apperror.KindNotFound))

	_, err = s.service.Update(s.ctx, "not-a-uuid", &UpdateProductRequest{})
	s.True(apperror.Is(err, apperror.KindNotFound))
}

func (s *ProductServiceSuite) TestDeleteRemovesFilesAndRows() {
	req := s.validRequest("Wooden Chair")
	req.Images = []attachment.Upload{pngUpload("a.png"), pngUpload("b.png")}
	created, err := s.service.Create(s.ctx, req)
	s.Require().NoError(err)

	deleted, err := s.service.Delete(s.ctx, created.ID.String())
	s.Require().NoError(err)
	s.Equal(created.ID, deleted.ID)

	s.Empty(s.store.Keys())
	s.Zero(s.count(&model.Product{}))
	s.Zero(s.count(&model.ProductImage{}))

	_, err = s.service.Delete(s.ctx, created.ID.String())
	s.True(apperror.Is(err, apperror.KindNotFound), "second delete: %v", err)
}

func (s *ProductServiceSuite) TestDeleteStoreFailureKeepsRows() {
	created, err := s.service.Create(s.ctx, s.validRequest("Wooden Chair"))
	s.Require().NoError(err)
	s.store.FailDelete = created.PrimaryImage

	_, err = s.service.Delete(s.ctx, created.ID.String())
	s.True(apperror.Is(err, apperror.KindStorage), "got %v", err)
	s.EqualValues(1, s.count(&model.Product{}))
}

func (s *ProductServiceSuite) TestListPagesNewestFirst() {
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		_, err := s.service.Create(s.ctx, s.validRequest(name))
		s.Require().NoError(err)
	}

	first, err := s.service.List(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(first.Items, repository.DefaultPerPage)
	s.EqualValues(6, first.Total)
	s.Equal(2, first.LastPage())

	second, err := s.service.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(second.Items, 1)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}
