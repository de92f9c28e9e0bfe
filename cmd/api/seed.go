package main

import (
	"context"
	"errors"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/config"
	"shop-admin-api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seed creates default privileges, roles, the admin user and the content singletons if they don't exist
func seed(ctx context.Context, db *gorm.DB, cfg config.ServerConfig) {
	log := logger.L()
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(ctx); err != nil {
		log.Warn("failed to seed privileges", zap.Error(err))
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(ctx); err != nil {
		log.Warn("failed to seed roles", zap.Error(err))
	}

	// 3. Assign privileges to roles that have none yet
	allPrivileges, err := privilegeRepo.FindAll(ctx)
	if err != nil {
		log.Warn("failed to load privileges", zap.Error(err))
		return
	}

	adminRole, err := roleRepo.FindByName(ctx, model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		if err := roleRepo.ReplacePrivileges(ctx, adminRole, allPrivileges); err != nil {
			log.Warn("failed to assign admin privileges", zap.Error(err))
		} else {
			log.Info("admin role assigned all privileges")
		}
	}

	operatorRole, err := roleRepo.FindByName(ctx, model.RoleOperator)
	if err == nil && len(operatorRole.Privileges) == 0 {
		operatorPrivileges, err := privilegeRepo.FindByCodes(ctx, model.OperatorPrivileges)
		if err == nil {
			err = roleRepo.ReplacePrivileges(ctx, operatorRole, operatorPrivileges)
		}
		if err != nil {
			log.Warn("failed to assign operator privileges", zap.Error(err))
		}
	}

	// 4. Create default admin user with the admin role
	email := cfg.AdminEmail
	if _, err := userRepo.FindByEmail(ctx, email); errors.Is(err, gorm.ErrRecordNotFound) {
		admin := &model.User{Name: "Administrator", Email: email}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"
		if err := admin.SetPassword(cfg.AdminPassword); err != nil {
			log.Warn("failed to hash admin password", zap.Error(err))
			return
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Warn("failed to create admin user", zap.Error(err))
		} else if adminRole != nil {
			if err := userRepo.ReplaceRoles(ctx, admin, []model.Role{*adminRole}); err != nil {
				log.Warn("failed to attach admin role", zap.Error(err))
			}
			log.Info("admin user created", zap.String("email", email))
		}
	}

	// 5. Content singletons
	if err := repository.NewContentRepo(db).SeedDefaults(ctx); err != nil {
		log.Warn("failed to seed content", zap.Error(err))
	}
}
