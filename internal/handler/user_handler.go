package handler

import (
	"errors"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/service"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetAllUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, users)
}

// GetUser godoc
// @Summary      Get user by username
// @Description  Returns the user, or null when no such user exists
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.service.GetUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Lookup contract: absent user is not an error
			response.Success(c, nil)
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// UpdateUser godoc
// @Summary      Update user profile
// @Description  Partially update username, password, email and/or birthday; omitted fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string                    true  "Username"
// @Param        request   body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      400       {object}  response.Response
// @Failure      422       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validationMessages(err))
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), username, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Deregister a user
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	if err := h.service.DeleteUser(c.Request.Context(), username); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": username + " was deleted"})
}

// AddFavorite godoc
// @Summary      Add a movie to a user's favorites
// @Description  Appends the movie id to the favorite list; duplicates are permitted
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username}/movies/{movieId} [post]
func (h *UserHandler) AddFavorite(c *gin.Context) {
	user, err := h.service.AddFavorite(c.Request.Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		h.favoriteError(c, err)
		return
	}

	response.Success(c, user)
}

// RemoveFavorite godoc
// @Summary      Remove a movie from a user's favorites
// @Description  Removes every occurrence of the movie id from the favorite list
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username}/movies/{movieId} [delete]
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	user, err := h.service.RemoveFavorite(c.Request.Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		h.favoriteError(c, err)
		return
	}

	response.Success(c, user)
}

func (h *UserHandler) favoriteError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrInvalidMovieID) {
		response.BadRequest(c, err.Error())
		return
	}
	response.InternalError(c)
}
