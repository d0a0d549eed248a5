package service

import (
	"context"
	"errors"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
	"myflix-api/pkg/auth"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account. The password is stored only as a
// bcrypt hash.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
		Birthday: req.Birthday,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and issues an access token. A missing user
// and a password mismatch both map to ErrInvalidCredentials so the
// response does not reveal which one happened; other lookup errors
// propagate as-is.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}
