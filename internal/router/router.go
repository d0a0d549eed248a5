// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "myflix-api/swagger" // Import generated swagger docs

	"myflix-api/internal/handler"
	"myflix-api/internal/middleware"
	"myflix-api/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler  *handler.AuthHandler
	UserHandler  *handler.UserHandler
	MovieHandler *handler.MovieHandler
	JWTManager   auth.TokenManager
	CORSOrigins  []string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static API documentation page
	r.StaticFile("/documentation", "./public/documentation.html")

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to myFlix, a movie catalog API!")
	})

	// Public routes
	r.POST("/users", cfg.AuthHandler.Register)
	r.POST("/login", cfg.AuthHandler.Login)

	// User routes (protected)
	users := r.Group("/users")
	users.Use(middleware.Auth(cfg.JWTManager))
	{
		users.GET("", cfg.UserHandler.GetAllUsers)
		users.GET("/:username", cfg.UserHandler.GetUser)
		users.PUT("/:username", cfg.UserHandler.UpdateUser)
		users.DELETE("/:username", cfg.UserHandler.DeleteUser)
		users.POST("/:username/movies/:movieId", cfg.UserHandler.AddFavorite)
		users.DELETE("/:username/movies/:movieId", cfg.UserHandler.RemoveFavorite)
	}

	// Movie routes (protected, read-only)
	movies := r.Group("/movies")
	movies.Use(middleware.Auth(cfg.JWTManager))
	{
		movies.GET("", cfg.MovieHandler.GetAllMovies)
		movies.GET("/:title", cfg.MovieHandler.GetMovieByTitle)
		movies.GET("/genres/:name", cfg.MovieHandler.GetGenre)
		movies.GET("/directors/:name", cfg.MovieHandler.GetDirector)
	}

	return r
}
