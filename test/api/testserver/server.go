//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"myflix-api/internal/cache"
	"myflix-api/internal/handler"
	"myflix-api/internal/repository"
	"myflix-api/internal/router"
	"myflix-api/internal/service"
	"myflix-api/pkg/auth"
	"myflix-api/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry time used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestCORSOrigin is the single origin the test server allows.
	TestCORSOrigin = "http://localhost:1234"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo  repository.UserRepository
	MovieRepo repository.MovieRepository

	// Services (for direct service access in tests)
	AuthService  service.AuthServicer
	UserService  service.UserServicer
	MovieService service.MovieServicer

	// Auth
	JWTManager *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	movieRepo := repository.NewMovieRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache)
	movieService := service.NewMovieService(movieRepo, redisCache)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:  authHandler,
		UserHandler:  userHandler,
		MovieHandler: movieHandler,
		JWTManager:   jwtManager,
		CORSOrigins:  []string{TestCORSOrigin},
	})

	return &TestServer{
		Router:       r,
		MongoDB:      mongoDB,
		Redis:        redisContainer,
		UserRepo:     userRepo,
		MovieRepo:    movieRepo,
		AuthService:  authService,
		UserService:  userService,
		MovieService: movieService,
		JWTManager:   jwtManager,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
