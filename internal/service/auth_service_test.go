package service

import (
	"context"
	"testing"
	"time"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/testutil"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (AuthService, *model.User) {
	db := testutil.NewDB(t)

	privilege := model.Privilege{Code: "product:create", Name: "Create products"}
	testutil.MustCreate(t, db, &privilege)
	role := model.Role{Name: "editor", Privileges: []model.Privilege{privilege}}
	testutil.MustCreate(t, db, &role)

	user := &model.User{Name: "Admin", Email: "admin@example.com", Roles: []model.Role{role}}
	require.NoError(t, user.SetPassword("secret123"))
	testutil.MustCreate(t, db, user)

	issuer := jwt.NewIssuer("test-secret", time.Hour, "shop-admin-api")
	return NewAuthService(repository.NewUserRepo(db), issuer), user
}

func TestLoginIssuesBearerToken(t *testing.T) {
	auth, user := newAuth(t)

	res, err := auth.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.Type)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, []string{"editor"}, res.User.Roles)

	got, err := auth.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, []string{"product:create"}, got.GetPrivilegeCodes())
}

func TestLoginFailures(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, &LoginRequest{Email: "admin@example.com", Password: "wrong-one"})
	assert.True(t, apperror.Is(err, apperror.KindAuth), "wrong password: %v", err)

	_, err = auth.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	requireFields(t, err, "email")

	_, err = auth.Login(ctx, &LoginRequest{Email: "not-an-email", Password: "123"})
	requireFields(t, err, "email", "password")
}

func TestTokensSurviveReloginUntilLogout(t *testing.T) {
	auth, user := newAuth(t)
	ctx := context.Background()

	first, err := auth.Login(ctx, &LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	second, err := auth.Login(ctx, &LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, first.Token)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, user.ID))

	for _, token := range []string{first.Token, second.Token} {
		_, err = auth.Authenticate(ctx, token)
		assert.True(t, apperror.Is(err, apperror.KindAuth))
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Authenticate(context.Background(), "not.a.jwt")
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, ErrUnauthenticated, appErr.Message)
}
