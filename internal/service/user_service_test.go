package service

import (
	"context"
	"testing"

	"myflix-api/internal/cache"
	cachemocks "myflix-api/internal/cache/mocks"
	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	repomocks "myflix-api/internal/repository/mocks"
	"myflix-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newUserService(t *testing.T) (*UserService, *repomocks.MockUserRepository, *cachemocks.MockCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockUserRepository(ctrl)
	c := cachemocks.NewMockCache(ctrl)
	return NewUserService(repo, c), repo, c
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	cacheKey := cache.UserCacheKey("moviefan42")

	t.Run("cache miss falls through to the repository and fills the cache", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		c.EXPECT().Get(ctx, cacheKey, gomock.Any()).Return(false, nil)
		repo.EXPECT().
			FindByUsername(ctx, "moviefan42").
			Return(&models.User{Username: "moviefan42"}, nil)
		c.EXPECT().Set(ctx, cacheKey, gomock.Any(), userCacheTTL).Return(nil)

		user, err := svc.GetUser(ctx, "moviefan42")
		require.NoError(t, err)
		assert.Equal(t, "moviefan42", user.Username)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, c := newUserService(t)

		c.EXPECT().
			Get(ctx, cacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*models.User) = models.User{Username: "moviefan42"}
				return true, nil
			})

		user, err := svc.GetUser(ctx, "moviefan42")
		require.NoError(t, err)
		assert.Equal(t, "moviefan42", user.Username)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		c.EXPECT().Get(ctx, cacheKey, gomock.Any()).Return(false, assert.AnError)
		repo.EXPECT().
			FindByUsername(ctx, "moviefan42").
			Return(&models.User{Username: "moviefan42"}, nil)
		c.EXPECT().Set(ctx, cacheKey, gomock.Any(), userCacheTTL).Return(nil)

		user, err := svc.GetUser(ctx, "moviefan42")
		require.NoError(t, err)
		assert.Equal(t, "moviefan42", user.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		c.EXPECT().Get(ctx, cache.UserCacheKey("nobody"), gomock.Any()).Return(false, nil)
		repo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, apperrors.ErrUserNotFound)

		user, err := svc.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newUserService(t)

	repo.EXPECT().
		FindAll(ctx).
		Return([]models.User{{Username: "alice"}, {Username: "bob99"}}, nil)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("password is hashed before it reaches the repository", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		plaintext := "newsecret"
		var storedUpdate *models.UpdateUserRequest
		repo.EXPECT().
			Update(ctx, "moviefan42", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update *models.UpdateUserRequest) (*models.User, error) {
				storedUpdate = update
				return &models.User{Username: "moviefan42"}, nil
			})
		c.EXPECT().Delete(ctx, cache.UserCacheKey("moviefan42")).Return(nil)

		req := &models.UpdateUserRequest{Password: &plaintext}
		_, err := svc.UpdateUser(ctx, "moviefan42", req)
		require.NoError(t, err)

		require.NotNil(t, storedUpdate.Password)
		assert.NotEqual(t, plaintext, *storedUpdate.Password)
		assert.NoError(t, auth.CheckPassword(plaintext, *storedUpdate.Password))

		// Caller's request is left untouched
		assert.Equal(t, plaintext, *req.Password)
	})

	t.Run("update without password skips hashing", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		email := "new@example.com"
		repo.EXPECT().
			Update(ctx, "moviefan42", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update *models.UpdateUserRequest) (*models.User, error) {
				assert.Nil(t, update.Password)
				assert.Equal(t, email, *update.Email)
				return &models.User{Username: "moviefan42", Email: email}, nil
			})
		c.EXPECT().Delete(ctx, cache.UserCacheKey("moviefan42")).Return(nil)

		user, err := svc.UpdateUser(ctx, "moviefan42", &models.UpdateUserRequest{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
	})

	t.Run("unknown user does not touch the cache", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		email := "new@example.com"
		repo.EXPECT().
			Update(ctx, "nobody", gomock.Any()).
			Return(nil, apperrors.ErrUserNotFound)

		user, err := svc.UpdateUser(ctx, "nobody", &models.UpdateUserRequest{Email: &email})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("delete invalidates the cache", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		repo.EXPECT().Delete(ctx, "moviefan42").Return(nil)
		c.EXPECT().Delete(ctx, cache.UserCacheKey("moviefan42")).Return(nil)

		assert.NoError(t, svc.DeleteUser(ctx, "moviefan42"))
	})

	t.Run("unknown user surfaces the repository error", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().Delete(ctx, "nobody").Return(apperrors.ErrUserNotFound)

		assert.ErrorIs(t, svc.DeleteUser(ctx, "nobody"), apperrors.ErrUserNotFound)
	})
}

func TestUserService_Favorites(t *testing.T) {
	ctx := context.Background()
	movieID := primitive.NewObjectID()

	t.Run("add favorite pushes the parsed object id", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		repo.EXPECT().
			PushFavorite(ctx, "moviefan42", movieID).
			Return(&models.User{
				Username:       "moviefan42",
				FavoriteMovies: []primitive.ObjectID{movieID},
			}, nil)
		c.EXPECT().Delete(ctx, cache.UserCacheKey("moviefan42")).Return(nil)

		user, err := svc.AddFavorite(ctx, "moviefan42", movieID.Hex())
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{movieID}, user.FavoriteMovies)
	})

	t.Run("remove favorite pulls the parsed object id", func(t *testing.T) {
		svc, repo, c := newUserService(t)

		repo.EXPECT().
			PullFavorite(ctx, "moviefan42", movieID).
			Return(&models.User{
				Username:       "moviefan42",
				FavoriteMovies: []primitive.ObjectID{},
			}, nil)
		c.EXPECT().Delete(ctx, cache.UserCacheKey("moviefan42")).Return(nil)

		user, err := svc.RemoveFavorite(ctx, "moviefan42", movieID.Hex())
		require.NoError(t, err)
		assert.Empty(t, user.FavoriteMovies)
	})

	t.Run("malformed movie id is rejected before the repository", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		user, err := svc.AddFavorite(ctx, "moviefan42", "not-a-hex-id")
		assert.ErrorIs(t, err, apperrors.ErrInvalidMovieID)
		assert.Nil(t, user)

		user, err = svc.RemoveFavorite(ctx, "moviefan42", "not-a-hex-id")
		assert.ErrorIs(t, err, apperrors.ErrInvalidMovieID)
		assert.Nil(t, user)
	})

	t.Run("unknown user surfaces the repository error", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().
			PushFavorite(ctx, "nobody", movieID).
			Return(nil, apperrors.ErrUserNotFound)

		user, err := svc.AddFavorite(ctx, "nobody", movieID.Hex())
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
