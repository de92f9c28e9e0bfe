package service

import (
	"context"
	"errors"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnauthenticated is the message of every rejected bearer token
const ErrUnauthenticated = "Unauthenticated."

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	// Logout revokes every token issued to the user so far
	Logout(ctx context.Context, userID uuid.UUID) error
	// Authenticate resolves a bearer token to its user, rejecting revoked tokens
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	Type  string             `json:"type"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	users  repository.UserRepository
	issuer *jwt.Issuer
}

func NewAuthService(users repository.UserRepository, issuer *jwt.Issuer) AuthService {
	return &authService{users: users, issuer: issuer}
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := failed(check(req)); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Field("email", "The selected email is invalid.")
	}
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if !user.CheckPassword(req.Password) {
		return nil, apperror.Auth("Invalid password")
	}

	// tokens stay valid across logins until logout rotates the version
	if user.TokenVersion == "" {
		user.TokenVersion = uuid.NewString()
		if err := s.users.UpdateTokenVersion(ctx, user.ID, user.TokenVersion); err != nil {
			return nil, apperror.Persistence(err)
		}
	}

	token, err := s.issuer.GenerateToken(user.ID, user.Email, user.Name, user.GetPrivilegeCodes(), user.TokenVersion)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, Type: "Bearer", User: user.ToResponse()}, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.UpdateTokenVersion(ctx, userID, uuid.NewString()); err != nil {
		return apperror.Persistence(err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		return nil, apperror.Auth(ErrUnauthenticated)
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Auth(ErrUnauthenticated)
	}
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperror.Auth(ErrUnauthenticated)
	}
	return user, nil
}
