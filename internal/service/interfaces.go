// Package service contains business logic for the application.
package service

import (
	"context"

	"myflix-api/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error)
}

// MovieServicer defines the interface for movie catalog operations.
type MovieServicer interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	GetGenre(ctx context.Context, name string) (*models.Genre, error)
	GetDirector(ctx context.Context, name string) (*models.Director, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer  = (*AuthService)(nil)
	_ UserServicer  = (*UserService)(nil)
	_ MovieServicer = (*MovieService)(nil)
)
