package main

import (
	"context"
	"flag"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/config"
	"shop-admin-api/pkg/database"
	"shop-admin-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reset-password sets a new password for an existing account and revokes its tokens.
//
//	go run ./cmd/reset-password -email admin@example.com -password secret123
func main() {
	// 1. Load Env
	cfg := config.Load()
	email := flag.String("email", cfg.Server.AdminEmail, "account email")
	password := flag.String("password", cfg.Server.AdminPassword, "new password (at least 6 characters)")
	flag.Parse()

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DB, cfg.Server.Env)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	ctx := context.Background()
	users := repository.NewUserRepo(db)

	// 3. Find the account
	user, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatal("user not found", zap.String("email", *email), zap.Error(err))
	}

	// 4. Hash and store the new password, then revoke issued tokens
	hashed := model.User{}
	if err := hashed.SetPassword(*password); err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}
	if err := users.UpdatePassword(ctx, user.ID, hashed.Password); err != nil {
		log.Fatal("failed to update password", zap.Error(err))
	}
	if err := users.UpdateTokenVersion(ctx, user.ID, uuid.NewString()); err != nil {
		log.Fatal("failed to revoke tokens", zap.Error(err))
	}

	log.Info("password reset", zap.String("email", user.Email))
}
