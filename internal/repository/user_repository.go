// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks myflix-api/internal/repository UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, username string, update *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, username string) error
	PushFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	PullFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user. Username uniqueness is enforced by the unique
// index (see cmd/index); a duplicate insert surfaces as ErrUsernameTaken
// with no separate existence read.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUsernameTaken
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByUsername finds a user by their username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Update applies the non-nil fields of the request to the user and returns
// the updated document. Omitted fields are left as-is.
func (r *userRepository) Update(ctx context.Context, username string, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Username != nil {
		updateDoc["username"] = *update.Username
	}
	if update.Password != nil {
		updateDoc["password"] = *update.Password
	}
	if update.Email != nil {
		updateDoc["email"] = *update.Email
	}
	if update.Birthday != nil {
		updateDoc["birthday"] = *update.Birthday
	}

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"username": username},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		// Renaming to a taken username trips the unique index
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes a user from the database
func (r *userRepository) Delete(ctx context.Context, username string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// PushFavorite appends movieID to the user's favorites. No existence or
// duplicate check on the movie id; the list permits duplicates.
func (r *userRepository) PushFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.updateFavorites(ctx, username, bson.M{
		"$push": bson.M{"favoriteMovies": movieID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

// PullFavorite removes all occurrences of movieID from the user's favorites.
func (r *userRepository) PullFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.updateFavorites(ctx, username, bson.M{
		"$pull": bson.M{"favoriteMovies": movieID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *userRepository) updateFavorites(ctx context.Context, username string, update bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"username": username},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
