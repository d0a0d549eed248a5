//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"myflix-api/internal/models"
	"myflix-api/pkg/response"
	"myflix-api/test/testutil"

	"github.com/stretchr/testify/require"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, username, password, email string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Username: username,
		Password: password,
		Email:    email,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/users", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the login response data.
func (ah *AuthHelper) Login(t *testing.T, username, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Username: username,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetToken logs in and returns just the bearer token.
func (ah *AuthHelper) GetToken(t *testing.T, username, password string) string {
	t.Helper()

	data := ah.Login(t, username, password)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return token
}

// CreateAuthenticatedUser registers a user and returns the user data and token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, username, password, email string) (userData map[string]interface{}, token string) {
	t.Helper()

	userData = ah.RegisterUser(t, username, password, email)
	token = ah.GetToken(t, username, password)

	return userData, token
}

// CreateDefaultUser registers a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, token string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "moviefan42", "password123", "fan@example.com")
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// MovieHelper provides movie catalog helpers for API tests.
type MovieHelper struct {
	server *TestServer
}

// NewMovieHelper creates a new movie helper.
func NewMovieHelper(server *TestServer) *MovieHelper {
	return &MovieHelper{server: server}
}

// SeedMovies inserts movies directly into the database. The API exposes
// no movie writes, so this is the only way tests can populate the catalog.
func (mh *MovieHelper) SeedMovies(t *testing.T, movies ...models.Movie) {
	t.Helper()
	ctx := context.Background()

	docs := make([]interface{}, 0, len(movies))
	for _, m := range movies {
		docs = append(docs, m)
	}

	collection := mh.server.MongoDB.Database.Collection("movies")
	_, err := collection.InsertMany(ctx, docs)
	require.NoError(t, err, "failed to seed movies")
}
