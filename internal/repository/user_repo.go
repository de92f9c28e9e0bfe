package repository

import (
	"context"

	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context, page Page) (Paginated[model.User], error)
	ExistsByEmail(ctx context.Context, email string, except uuid.UUID) (bool, error)
	ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error
	UpdateTokenVersion(ctx context.Context, userID uuid.UUID, version string) error
}

type userRepo struct {
	crud[model.User]
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{crud[model.User]{db: db, preloads: []string{"Roles.Privileges"}}}
}

func (r *userRepo) WithTx(tx *gorm.DB) UserRepository {
	return &userRepo{r.with(tx)}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.conn(ctx).Preload("Roles.Privileges").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "email", email, except)
}

func (r *userRepo) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.conn(ctx).Model(user).Association("Roles").Replace(roles)
}

func (r *userRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error {
	return r.conn(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error
}

func (r *userRepo) UpdateTokenVersion(ctx context.Context, userID uuid.UUID, version string) error {
	return r.conn(ctx).Model(&model.User{}).Where("id = ?", userID).Update("token_version", version).Error
}
