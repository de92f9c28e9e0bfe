package service

import (
	"context"
	"strconv"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/database"
	"shop-admin-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.User], error)
	Get(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, req *CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id string, req *UpdateUserRequest) (*model.User, error)
}

type CreateUserRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Email     string   `json:"email" validate:"required,email,max=255"`
	Password  string   `json:"password" validate:"required,min=6"`
	Cellphone string   `json:"cellphone" validate:"omitempty,ir_mobile"`
	Roles     []string `json:"roles" validate:"omitempty,dive,required"`
}

// UpdateUserRequest replaces filled fields only. A non-nil Roles syncs the role list.
type UpdateUserRequest struct {
	Name      string   `json:"name" validate:"omitempty,max=255"`
	Email     string   `json:"email" validate:"omitempty,email,max=255"`
	Password  string   `json:"password" validate:"omitempty,min=6"`
	Cellphone string   `json:"cellphone" validate:"omitempty,ir_mobile"`
	Roles     []string `json:"roles" validate:"omitempty,dive,required"`
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	tx    database.Transactor
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, tx database.Transactor) UserService {
	return &userService{users: users, roles: roles, tx: tx}
}

func (s *userService) List(ctx context.Context, page int) (repository.Paginated[model.User], error) {
	res, err := s.users.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *userService) Get(ctx context.Context, rawID string) (*model.User, error) {
	id, err := parseID(rawID, "User")
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	errs := check(req)
	if err := unique(errs, "email", req.Email, func() (bool, error) {
		return s.users.ExistsByEmail(ctx, req.Email, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	roles, err := s.resolveRoles(ctx, errs, req.Roles)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Cellphone:    req.Cellphone,
		TokenVersion: uuid.NewString(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperror.Persistence(err)
	}
	user.CreatedBy = actor(ctx)
	user.UpdatedBy = actor(ctx)

	err = s.tx.InTx(ctx, func(tx *gorm.DB) error {
		repo := s.users.WithTx(tx)
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
		if len(roles) > 0 {
			return repo.ReplaceRoles(ctx, user, roles)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return s.reload(ctx, user.ID)
}

func (s *userService) Update(ctx context.Context, rawID string, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	errs := check(req)
	if err := unique(errs, "email", req.Email, func() (bool, error) {
		return s.users.ExistsByEmail(ctx, req.Email, user.ID)
	}); err != nil {
		return nil, err
	}
	roles, err := s.resolveRoles(ctx, errs, req.Roles)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	fill(&user.Name, req.Name)
	fill(&user.Email, req.Email)
	fill(&user.Cellphone, req.Cellphone)
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, apperror.Persistence(err)
		}
	}
	user.UpdatedBy = actor(ctx)

	err = s.tx.InTx(ctx, func(tx *gorm.DB) error {
		repo := s.users.WithTx(tx)
		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		if req.Roles != nil {
			return repo.ReplaceRoles(ctx, user, roles)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return s.reload(ctx, user.ID)
}

// resolveRoles loads the named roles, adding "roles.N" messages for names that do not exist
func (s *userService) resolveRoles(ctx context.Context, errs validator.Errors, names []string) ([]model.Role, error) {
	if len(names) == 0 {
		return []model.Role{}, nil
	}
	roles, err := s.roles.FindByNames(ctx, names)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	found := make(map[string]bool, len(roles))
	for _, r := range roles {
		found[r.Name] = true
	}
	for i, name := range names {
		if name != "" && !found[name] {
			errs.Add("roles."+strconv.Itoa(i), "The selected roles."+strconv.Itoa(i)+" is invalid.")
		}
	}
	return roles, nil
}

func (s *userService) reload(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	return user, nil
}
