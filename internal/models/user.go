// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. FavoriteMovies is an ordered list
// of movie ObjectIDs; duplicates are permitted.
type User struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username       string               `json:"username" bson:"username" example:"moviefan42"`
	Password       string               `json:"-" bson:"password"` // bcrypt hash, never serialized
	Email          string               `json:"email" bson:"email" example:"fan@example.com"`
	Birthday       *time.Time           `json:"birthday,omitempty" bson:"birthday,omitempty" example:"1990-04-12T00:00:00Z"`
	FavoriteMovies []primitive.ObjectID `json:"favoriteMovies" bson:"favoriteMovies"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username string     `json:"username" binding:"required,username" example:"moviefan42"`
	Password string     `json:"password" binding:"required" example:"secret123"`
	Email    string     `json:"email" binding:"required,email" example:"fan@example.com"`
	Birthday *time.Time `json:"birthday" binding:"omitempty" example:"1990-04-12T00:00:00Z"`
}

// UpdateUserRequest is the payload for updating a profile. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Username *string    `json:"username" binding:"omitempty,username" example:"newname42"`
	Password *string    `json:"password" binding:"omitempty,min=1" example:"newsecret"`
	Email    *string    `json:"email" binding:"omitempty,email" example:"new@example.com"`
	Birthday *time.Time `json:"birthday" binding:"omitempty" example:"1990-04-12T00:00:00Z"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"moviefan42"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}
