// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"myflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:             primitive.NewObjectID(),
			Username:       fmt.Sprintf("user%s", primitive.NewObjectID().Hex()[:8]),
			Password:       "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Email:          fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			FavoriteMovies: []primitive.ObjectID{},
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) WithBirthday(birthday time.Time) *UserBuilder {
	b.user.Birthday = &birthday
	return b
}

func (b *UserBuilder) WithFavorites(ids ...primitive.ObjectID) *UserBuilder {
	b.user.FavoriteMovies = ids
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Movie Fixtures =====

// MovieBuilder provides fluent API for building test movies.
type MovieBuilder struct {
	movie models.Movie
}

// NewMovie creates a new MovieBuilder with sensible defaults.
func NewMovie() *MovieBuilder {
	return &MovieBuilder{
		movie: models.Movie{
			ID:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("Test Movie %s", primitive.NewObjectID().Hex()[:8]),
			Description: "A test movie.",
			Genre: models.Genre{
				Name:        "Drama",
				Description: "Serious, plot-driven stories.",
			},
			Director: models.Director{
				Name:  "Test Director",
				Bio:   "A director used in tests.",
				Birth: "1950",
			},
			ImagePath: "posters/test-movie.svg",
			Featured:  false,
		},
	}
}

func (b *MovieBuilder) WithID(id primitive.ObjectID) *MovieBuilder {
	b.movie.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

func (b *MovieBuilder) WithGenre(name, description string) *MovieBuilder {
	b.movie.Genre = models.Genre{Name: name, Description: description}
	return b
}

func (b *MovieBuilder) WithDirector(director models.Director) *MovieBuilder {
	b.movie.Director = director
	return b
}

func (b *MovieBuilder) Featured() *MovieBuilder {
	b.movie.Featured = true
	return b
}

func (b *MovieBuilder) Build() models.Movie {
	return b.movie
}

func (b *MovieBuilder) BuildPtr() *models.Movie {
	return &b.movie
}
