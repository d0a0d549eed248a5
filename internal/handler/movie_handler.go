package handler

import (
	"errors"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/service"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service service.MovieServicer
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.MovieServicer) *MovieHandler {
	return &MovieHandler{service: service}
}

// GetAllMovies godoc
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Movie}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies [get]
func (h *MovieHandler) GetAllMovies(c *gin.Context) {
	movies, err := h.service.GetAllMovies(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, movies)
}

// GetMovieByTitle godoc
// @Summary      Get movie by title
// @Description  Returns the movie, or null when no such title exists
// @Tags         movies
// @Produce      json
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  response.Response{data=models.Movie}
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{title} [get]
func (h *MovieHandler) GetMovieByTitle(c *gin.Context) {
	title := c.Param("title")

	movie, err := h.service.GetMovieByTitle(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, apperrors.ErrMovieNotFound) {
			response.Success(c, nil)
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, movie)
}

// GetGenre godoc
// @Summary      Get genre details by name
// @Description  Returns the genre sub-document of the first movie with that genre
// @Tags         movies
// @Produce      json
// @Param        name  path      string  true  "Genre name"
// @Success      200   {object}  response.Response{data=models.Genre}
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/genres/{name} [get]
func (h *MovieHandler) GetGenre(c *gin.Context) {
	genre, err := h.service.GetGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, apperrors.ErrGenreNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, genre)
}

// GetDirector godoc
// @Summary      Get director details by name
// @Description  Returns the director sub-document of the first movie with that director
// @Tags         movies
// @Produce      json
// @Param        name  path      string  true  "Director name"
// @Success      200   {object}  response.Response{data=models.Director}
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/directors/{name} [get]
func (h *MovieHandler) GetDirector(c *gin.Context) {
	director, err := h.service.GetDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, apperrors.ErrDirectorNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, director)
}
