package repository

import (
	"context"
	"errors"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_movie_repository.go -package=mocks myflix-api/internal/repository MovieRepository

// MovieRepository defines the interface for movie data operations.
// The API exposes no movie writes; the catalog is seeded out-of-band.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindFirstByGenre(ctx context.Context, genreName string) (*models.Movie, error)
	FindFirstByDirector(ctx context.Context, directorName string) (*models.Movie, error)
}

// movieRepository implements MovieRepository using MongoDB
type movieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{
		collection: db.Collection("movies"),
	}
}

// FindAll returns all movies
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}

// FindByTitle finds a movie by its exact title
func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// FindFirstByGenre returns the first movie whose genre name matches.
func (r *movieRepository) FindFirstByGenre(ctx context.Context, genreName string) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, bson.M{"genre.name": genreName}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrGenreNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// FindFirstByDirector returns the first movie whose director name matches.
func (r *movieRepository) FindFirstByDirector(ctx context.Context, directorName string) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, bson.M{"director.name": directorName}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDirectorNotFound
		}
		return nil, err
	}

	return &movie, nil
}
