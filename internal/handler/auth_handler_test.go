package handler

import (
	"context"
	"net/http"
	"testing"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(mock *mocks.MockAuthService) *gin.Engine {
	h := NewAuthHandler(mock)
	router := gin.New()
	router.POST("/users", h.Register)
	router.POST("/login", h.Login)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mock           *mocks.MockAuthService
		expectedStatus int
		checkResponse  func(t *testing.T, resp responseBody)
	}{
		{
			name: "successful registration",
			body: gin.H{"username": "moviefan42", "password": "secret123", "email": "fan@example.com"},
			mock: &mocks.MockAuthService{
				RegisterFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return &models.User{Username: req.Username, Email: req.Email}, nil
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.True(t, resp.Success)
			},
		},
		{
			name: "username too short fails validation",
			body: gin.H{"username": "abc", "password": "secret123", "email": "fan@example.com"},
			mock: &mocks.MockAuthService{},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.False(t, resp.Success)
				assert.Contains(t, resp.Errors, "Username must be at least 5 alphanumeric characters")
			},
		},
		{
			name: "invalid email fails validation",
			body: gin.H{"username": "moviefan42", "password": "secret123", "email": "not-an-email"},
			mock: &mocks.MockAuthService{},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Contains(t, resp.Errors, "Email must be a valid email address")
			},
		},
		{
			name: "missing fields reported together",
			body: gin.H{},
			mock: &mocks.MockAuthService{},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Len(t, resp.Errors, 3)
			},
		},
		{
			name: "duplicate username",
			body: gin.H{"username": "moviefan42", "password": "secret123", "email": "fan@example.com"},
			mock: &mocks.MockAuthService{
				RegisterFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUsernameTaken
				},
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Equal(t, "username is already taken", resp.Error)
			},
		},
		{
			name: "service failure",
			body: gin.H{"username": "moviefan42", "password": "secret123", "email": "fan@example.com"},
			mock: &mocks.MockAuthService{
				RegisterFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, assert.AnError
				},
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Equal(t, "internal server error", resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(tt.mock)

			w := performRequest(router, http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, parseResponse(t, w))
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mock           *mocks.MockAuthService
		expectedStatus int
		checkResponse  func(t *testing.T, resp responseBody)
	}{
		{
			name: "successful login returns token",
			body: gin.H{"username": "moviefan42", "password": "secret123"},
			mock: &mocks.MockAuthService{
				LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return &models.LoginResponse{
						Token: "a.jwt.token",
						User:  models.User{Username: req.Username},
					}, nil
				},
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.True(t, resp.Success)
			},
		},
		{
			name: "wrong password",
			body: gin.H{"username": "moviefan42", "password": "wrong"},
			mock: &mocks.MockAuthService{
				LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				},
			},
			expectedStatus: http.StatusUnauthorized,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Equal(t, "invalid username or password", resp.Error)
			},
		},
		{
			name:           "missing credentials fail validation",
			body:           gin.H{"username": "moviefan42"},
			mock:           &mocks.MockAuthService{},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp responseBody) {
				assert.Contains(t, resp.Errors, "Password is required")
			},
		},
		{
			name: "service failure",
			body: gin.H{"username": "moviefan42", "password": "secret123"},
			mock: &mocks.MockAuthService{
				LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, assert.AnError
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(tt.mock)

			w := performRequest(router, http.MethodPost, "/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, parseResponse(t, w))
			}
		})
	}
}
