package service

import (
	"context"
	"time"

	"myflix-api/internal/cache"
	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
	"myflix-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

// GetUser retrieves a user by username (with caching).
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	cacheKey := cache.UserCacheKey(username)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	dbUser, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateUser applies a partial profile update. A password in the request is
// hashed before it reaches storage.
func (s *UserService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		req = &models.UpdateUserRequest{
			Username: req.Username,
			Password: &hashed,
			Email:    req.Email,
			Birthday: req.Birthday,
		}
	}

	user, err := s.repo.Update(ctx, username, req)
	if err != nil {
		return nil, err
	}

	// Invalidate under the old name; a rename caches under the new name on next read
	_ = s.cache.Delete(ctx, cache.UserCacheKey(username))

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(username))

	return nil
}

// AddFavorite appends a movie id to the user's favorite list.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrInvalidMovieID
	}

	user, err := s.repo.PushFavorite(ctx, username, objectID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(username))

	return user, nil
}

// RemoveFavorite removes all occurrences of a movie id from the user's
// favorite list.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrInvalidMovieID
	}

	user, err := s.repo.PullFavorite(ctx, username, objectID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(username))

	return user, nil
}
