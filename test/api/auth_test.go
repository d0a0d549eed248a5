//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"myflix-api/internal/models"
	"myflix-api/pkg/auth"
	"myflix-api/pkg/response"
	"myflix-api/test/api/testserver"
	"myflix-api/test/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("registers a new user", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", gin.H{
			"username": "moviefan42",
			"password": "password123",
			"email":    "fan@example.com",
		})

		require.Equal(t, http.StatusCreated, w.Code, "got: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "moviefan42", data["username"])
		assert.Equal(t, "fan@example.com", data["email"])

		// Password never leaves the server
		_, exposed := data["password"]
		assert.False(t, exposed)
	})

	t.Run("stores a bcrypt hash, not the plaintext", func(t *testing.T) {
		stored, err := testServer.UserRepo.FindByUsername(context.Background(), "moviefan42")
		require.NoError(t, err)

		assert.NotEqual(t, "password123", stored.Password)
		assert.NoError(t, auth.CheckPassword("password123", stored.Password))
	})

	t.Run("registering the same username twice fails", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", gin.H{
			"username": "moviefan42",
			"password": "otherpassword",
			"email":    "other@example.com",
		})

		require.Equal(t, http.StatusBadRequest, w.Code, "got: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "username is already taken", resp.Error)
	})

	t.Run("rejects invalid payloads with one message per rule", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", gin.H{
			"username": "ab",
			"email":    "not-an-email",
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Errors, "Username must be at least 5 alphanumeric characters")
		assert.Contains(t, resp.Errors, "Password is required")
		assert.Contains(t, resp.Errors, "Email must be a valid email address")
	})

	t.Run("accepts an optional birthday", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", gin.H{
			"username": "birthday99",
			"password": "password123",
			"email":    "bday@example.com",
			"birthday": "1990-04-12T00:00:00Z",
		})

		require.Equal(t, http.StatusCreated, w.Code, "got: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "1990-04-12T00:00:00Z", data["birthday"])
	})
}

func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.RegisterUser(t, "moviefan42", "password123", "fan@example.com")

	t.Run("valid credentials return a token and the user", func(t *testing.T) {
		data := authHelper.Login(t, "moviefan42", "password123")

		token, ok := data["token"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, token)

		user, ok := data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "moviefan42", user["username"])
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/login", models.LoginRequest{
			Username: "moviefan42",
			Password: "wrong-password",
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, "invalid username or password", resp.Error)
	})

	t.Run("unknown user gets the same error as a wrong password", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/login", models.LoginRequest{
			Username: "nobody99",
			Password: "password123",
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, "invalid username or password", resp.Error)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/login", gin.H{})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTokenAuthentication(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, token := authHelper.CreateDefaultUser(t)

	t.Run("issued token opens protected routes", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/movies", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/movies", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		tampered := token[:len(token)-2] + "xx"
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/movies", tampered, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("registration and login stay public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", gin.H{
			"username": "public99",
			"password": "password123",
			"email":    "public@example.com",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("welcome route stays public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
