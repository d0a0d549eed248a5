// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Movie errors
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrGenreNotFound    = errors.New("no movie found with that genre")
	ErrDirectorNotFound = errors.New("no movie found with that director")
	ErrInvalidMovieID   = errors.New("invalid movie id")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)
