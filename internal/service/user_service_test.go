package service

import (
	"context"
	"testing"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/testutil"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	privileges := repository.NewPrivilegeRepo(db)
	require.NoError(t, privileges.SeedDefaults(context.Background()))
	testutil.MustCreate(t, db, &model.Role{Name: "admin"}, &model.Role{Name: "operator"})
}

func TestUserCreateAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	seedRoles(t, db)
	svc := NewUserService(repository.NewUserRepo(db), repository.NewRoleRepo(db), database.NewTransactor(db))
	ctx := WithActor(context.Background(), "admin-id")

	user, err := svc.Create(ctx, &CreateUserRequest{
		Name:      "Sara",
		Email:     "sara@example.com",
		Password:  "secret123",
		Cellphone: "09121234567",
		Roles:     []string{"operator"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"operator"}, user.RoleNames())
	assert.True(t, user.CheckPassword("secret123"))
	assert.NotEmpty(t, user.TokenVersion)
	assert.Equal(t, "admin-id", user.CreatedBy)

	_, err = svc.Create(ctx, &CreateUserRequest{
		Name: "Copy", Email: "sara@example.com", Password: "secret123", Cellphone: "12345", Roles: []string{"ghost"},
	})
	fields := requireFields(t, err, "email", "cellphone", "roles.0")
	assert.Equal(t, []string{"The selected roles.0 is invalid."}, fields["roles.0"])

	updated, err := svc.Update(ctx, user.ID.String(), &UpdateUserRequest{Name: "Sara K", Roles: []string{"admin", "operator"}})
	require.NoError(t, err)
	assert.Equal(t, "Sara K", updated.Name)
	assert.Equal(t, "sara@example.com", updated.Email)
	assert.ElementsMatch(t, []string{"admin", "operator"}, updated.RoleNames())
	assert.True(t, updated.CheckPassword("secret123"), "password kept when not filled")

	kept, err := svc.Update(ctx, user.ID.String(), &UpdateUserRequest{Password: "another1"})
	require.NoError(t, err)
	assert.Len(t, kept.Roles, 2, "nil roles leave the role list alone")
	assert.True(t, kept.CheckPassword("another1"))
}

func TestUserGetUnknown(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepo(db), repository.NewRoleRepo(db), database.NewTransactor(db))

	_, err := svc.Get(context.Background(), "b9d6f8de-4bd8-4a39-8f42-0d7d3e8a1c55")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestRoleCreateAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	seedRoles(t, db)
	svc := NewRoleService(repository.NewRoleRepo(db), repository.NewPrivilegeRepo(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &RoleRequest{Name: "admin", Privileges: []string{"product:create", "nope"}})
	fields := requireFields(t, err, "name", "privileges.1")
	assert.NotContains(t, fields, "privileges.0")

	role, err := svc.Create(ctx, &RoleRequest{Name: "editor", Privileges: []string{"product:create", "product:update"}})
	require.NoError(t, err)
	assert.Len(t, role.Privileges, 2)

	updated, err := svc.Update(ctx, "editor", &RoleRequest{})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Nil(t, updated)

	updated, err = svc.Update(ctx, itoa(role.ID), &RoleRequest{Description: "Catalog editors", Privileges: []string{"category:create"}})
	require.NoError(t, err)
	assert.Equal(t, "editor", updated.Name)
	assert.Equal(t, "Catalog editors", updated.Description)
	require.Len(t, updated.Privileges, 1)
	assert.Equal(t, "category:create", updated.Privileges[0].Code)

	roles, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}
