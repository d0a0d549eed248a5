// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"myflix-api/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc        func(ctx context.Context, username string) (*models.User, error)
	GetAllUsersFunc    func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc     func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc     func(ctx context.Context, username string) error
	AddFavoriteFunc    func(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavoriteFunc func(ctx context.Context, username, movieID string) (*models.User, error)
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, username, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, username string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, username)
	}
	return nil
}

func (m *MockUserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

func (m *MockUserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	GetAllMoviesFunc    func(ctx context.Context) ([]models.Movie, error)
	GetMovieByTitleFunc func(ctx context.Context, title string) (*models.Movie, error)
	GetGenreFunc        func(ctx context.Context, name string) (*models.Genre, error)
	GetDirectorFunc     func(ctx context.Context, name string) (*models.Director, error)
}

func (m *MockMovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	if m.GetAllMoviesFunc != nil {
		return m.GetAllMoviesFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	if m.GetMovieByTitleFunc != nil {
		return m.GetMovieByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *MockMovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	if m.GetGenreFunc != nil {
		return m.GetGenreFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockMovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	if m.GetDirectorFunc != nil {
		return m.GetDirectorFunc(ctx, name)
	}
	return nil, nil
}
