package repository

import (
	"context"
	"errors"

	"shop-admin-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	FindAll(ctx context.Context) ([]model.Role, error)
	FindByID(ctx context.Context, id uint) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindByNames(ctx context.Context, names []string) ([]model.Role, error)
	ExistsByName(ctx context.Context, name string, except uint) (bool, error)
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	ReplacePrivileges(ctx context.Context, role *model.Role, privileges []model.Privilege) error
	SeedDefaults(ctx context.Context) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Preload("Privileges").Order("created_at DESC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Preload("Privileges").First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Preload("Privileges").Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByNames(ctx context.Context, names []string) ([]model.Role, error) {
	var roles []model.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&roles).Error
	return roles, err
}

func (r *roleRepo) ExistsByName(ctx context.Context, name string, except uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Role{}).Where("name = ?", name)
	if except != 0 {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *roleRepo) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(role).Error
}

func (r *roleRepo) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(role).Error
}

func (r *roleRepo) ReplacePrivileges(ctx context.Context, role *model.Role, privileges []model.Privilege) error {
	return r.db.WithContext(ctx).Model(role).Association("Privileges").Replace(privileges)
}

// SeedDefaults creates the default roles that do not exist yet
func (r *roleRepo) SeedDefaults(ctx context.Context) error {
	for _, defaultRole := range model.DefaultRoles {
		role := defaultRole
		_, err := r.FindByName(ctx, role.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.Create(ctx, &role); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
