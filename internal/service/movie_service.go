package service

import (
	"context"
	"time"

	"myflix-api/internal/cache"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
)

// The catalog only changes when the seeder runs, so it can sit in cache
// for a while.
const (
	movieCacheTTL     = time.Hour
	movieListCacheTTL = time.Hour
)

// MovieService handles business logic for the movie catalog.
type MovieService struct {
	repo  repository.MovieRepository
	cache cache.Cache
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repository.MovieRepository, cache cache.Cache) *MovieService {
	return &MovieService{
		repo:  repo,
		cache: cache,
	}
}

// GetAllMovies retrieves the full catalog (with caching).
func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	found, err := s.cache.Get(ctx, cache.MovieListCacheKey, &movies)
	if err == nil && found {
		return movies, nil
	}

	movies, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cache.MovieListCacheKey, movies, movieListCacheTTL)

	return movies, nil
}

// GetMovieByTitle retrieves a single movie by exact title (with caching).
func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	cacheKey := cache.MovieCacheKey(title)
	var movie models.Movie
	found, err := s.cache.Get(ctx, cacheKey, &movie)
	if err == nil && found {
		return &movie, nil
	}

	dbMovie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, dbMovie, movieCacheTTL)

	return dbMovie, nil
}

// GetGenre returns the genre sub-document of the first movie matching the
// genre name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	movie, err := s.repo.FindFirstByGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director sub-document of the first movie
// matching the director name.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	movie, err := s.repo.FindFirstByDirector(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}
