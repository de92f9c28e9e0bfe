package service

import (
	"context"
	"strconv"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/validator"
)

type RoleService interface {
	List(ctx context.Context) ([]model.Role, error)
	Create(ctx context.Context, req *RoleRequest) (*model.Role, error)
	Update(ctx context.Context, id string, req *RoleRequest) (*model.Role, error)
}

// RoleRequest names a role and, optionally, the privilege codes it grants
type RoleRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=100"`
	Description string   `json:"description"`
	Privileges  []string `json:"privileges" validate:"omitempty,dive,required"`
}

type roleService struct {
	roles      repository.RoleRepository
	privileges repository.PrivilegeRepository
}

func NewRoleService(roles repository.RoleRepository, privileges repository.PrivilegeRepository) RoleService {
	return &roleService{roles: roles, privileges: privileges}
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return roles, nil
}

func (s *roleService) Create(ctx context.Context, req *RoleRequest) (*model.Role, error) {
	errs := check(req)
	if req.Name == "" {
		errs.Add("name", "The name field is required.")
	}
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.roles.ExistsByName(ctx, req.Name, 0)
	}); err != nil {
		return nil, err
	}
	privileges, err := s.resolvePrivileges(ctx, errs, req.Privileges)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	role := &model.Role{Name: req.Name, Description: req.Description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, apperror.Persistence(err)
	}
	if len(privileges) > 0 {
		if err := s.roles.ReplacePrivileges(ctx, role, privileges); err != nil {
			return nil, apperror.Persistence(err)
		}
	}
	return s.reload(ctx, role.ID)
}

func (s *roleService) Update(ctx context.Context, rawID string, req *RoleRequest) (*model.Role, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return nil, apperror.NotFound("Role not found.")
	}
	role, err := s.reload(ctx, uint(id))
	if err != nil {
		return nil, err
	}

	errs := check(req)
	if err := unique(errs, "name", req.Name, func() (bool, error) {
		return s.roles.ExistsByName(ctx, req.Name, role.ID)
	}); err != nil {
		return nil, err
	}
	privileges, err := s.resolvePrivileges(ctx, errs, req.Privileges)
	if err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	fill(&role.Name, req.Name)
	fill(&role.Description, req.Description)
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, apperror.Persistence(err)
	}
	if req.Privileges != nil {
		if err := s.roles.ReplacePrivileges(ctx, role, privileges); err != nil {
			return nil, apperror.Persistence(err)
		}
	}
	return s.reload(ctx, role.ID)
}

func (s *roleService) resolvePrivileges(ctx context.Context, errs validator.Errors, codes []string) ([]model.Privilege, error) {
	if len(codes) == 0 {
		return []model.Privilege{}, nil
	}
	privileges, err := s.privileges.FindByCodes(ctx, codes)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	found := make(map[string]bool, len(privileges))
	for _, p := range privileges {
		found[p.Code] = true
	}
	for i, code := range codes {
		if code != "" && !found[code] {
			errs.Add("privileges."+strconv.Itoa(i), "The selected privileges."+strconv.Itoa(i)+" is invalid.")
		}
	}
	return privileges, nil
}

func (s *roleService) reload(ctx context.Context, id uint) (*model.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Role")
	}
	return role, nil
}
