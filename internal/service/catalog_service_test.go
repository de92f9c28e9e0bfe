package service

import (
	"context"
	"testing"
	"time"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/testutil"
	"shop-admin-api/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CategoryRequest{})
	requireFields(t, err, "name")

	created, err := svc.Create(ctx, &CategoryRequest{Name: "Lamps"})
	require.NoError(t, err)
	assert.True(t, created.Status)

	_, err = svc.Create(ctx, &CategoryRequest{Name: "Lamps"})
	fields := requireFields(t, err, "name")
	assert.Equal(t, []string{"The name has already been taken."}, fields["name"])

	updated, err := svc.Update(ctx, created.ID.String(), &CategoryRequest{Status: "false"})
	require.NoError(t, err)
	assert.Equal(t, "Lamps", updated.Name)
	assert.False(t, updated.Status)

	_, err = svc.Delete(ctx, created.ID.String())
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.ID.String())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCategoryDeleteRefusedWhileProductsRemain(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))

	category := model.Category{Name: "Chairs", Status: true}
	testutil.MustCreate(t, db, &category)
	testutil.MustCreate(t, db, &model.Product{
		Name:       "Stool",
		CategoryID: category.ID,
		Price:      decimal.NewFromInt(10),
		Quantity:   1,
		Status:     true,
	})

	_, err := svc.Delete(context.Background(), category.ID.String())
	assert.True(t, apperror.Is(err, apperror.KindBadRequest), "got %v", err)

	_, err = svc.Get(context.Background(), category.ID.String())
	assert.NoError(t, err)
}

func TestFeatureRequiresEveryField(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewFeatureService(repository.NewFeatureRepo(db))

	_, err := svc.Create(context.Background(), &FeatureRequest{Title: "Fast delivery"})
	requireFields(t, err, "body", "icon")

	f, err := svc.Create(context.Background(), &FeatureRequest{Title: "Fast delivery", Body: "Within 24h", Icon: "fa-truck"})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), f.ID.String())
	require.NoError(t, err)
	assert.Equal(t, f.ID, deleted.ID)
}

func TestCouponExpiryParsedInLocalZone(t *testing.T) {
	db := testutil.NewDB(t)
	tehran := time.FixedZone("IRST", 3*60*60+30*60)
	svc := NewCouponService(repository.NewDiscountRepo(db), tehran)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CouponRequest{Code: "SPRING", Percent: "ten", ExpiresAt: "2024-05-01"})
	requireFields(t, err, "percent", "expires_at")

	coupon, err := svc.Create(ctx, &CouponRequest{Code: "SPRING", Percent: "10", ExpiresAt: "2024/05/01 00:00:00"})
	require.NoError(t, err)
	assert.Equal(t, 10, coupon.Percent)
	assert.True(t, coupon.ExpiresAt.Equal(time.Date(2024, 4, 30, 20, 30, 0, 0, time.UTC)))

	updated, err := svc.Update(ctx, coupon.ID.String(), &CouponRequest{Percent: "25"})
	require.NoError(t, err)
	assert.Equal(t, "SPRING", updated.Code)
	assert.Equal(t, 25, updated.Percent)
}
