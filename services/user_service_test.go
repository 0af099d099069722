package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

func TestUserCreate_EmptyFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreateUserRequest
		msg  string
	}{
		{"empty username", models.CreateUserRequest{Email: "a@b.c", Password: "pw"}, "username cannot be empty"},
		{"empty email", models.CreateUserRequest{Username: "a", Password: "pw"}, "email cannot be empty"},
		{"empty password", models.CreateUserRequest{Username: "a", Email: "a@b.c"}, "password cannot be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, pkg.ErrBadRequest))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	// none of the invalid requests reached the store
	assert.Equal(t, 0, repo.createCalls)
}

func TestUserCreate_AssignsID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "ayse",
		Email:    "ayse@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ayse", user.Username)
}

func TestUserUpdate_NotFoundLeavesStoreUntouched(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	err := svc.Update(context.Background(), 99, &models.UpdateUserRequest{Username: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUserDelete_NotFoundLeavesStoreUntouched(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestFollow_Self(t *testing.T) {
	repo := newFakeUserRepo()
	u := repo.addUser("ayse", "ayse@example.com")
	svc := NewUserService(repo)

	err := svc.Follow(context.Background(), u.ID, u.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrBadRequest))
	assert.Contains(t, err.Error(), "cannot follow yourself")
	assert.Equal(t, 0, repo.followCalls)
}

func TestFollow_MissingUsers(t *testing.T) {
	repo := newFakeUserRepo()
	u := repo.addUser("ayse", "ayse@example.com")
	svc := NewUserService(repo)
	ctx := context.Background()

	err := svc.Follow(ctx, 99, u.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Contains(t, err.Error(), "user does not exist")

	err = svc.Follow(ctx, u.ID, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Contains(t, err.Error(), "user to follow does not exist")

	assert.Equal(t, 0, repo.followCalls)
}

func TestFollow_Twice_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.addUser("ayse", "ayse@example.com")
	b := repo.addUser("bora", "bora@example.com")
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))

	following, err := svc.GetFollowing(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, following, 1)
}

func TestUnfollow_MissingFollowee(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.addUser("ayse", "ayse@example.com")
	svc := NewUserService(repo)

	err := svc.Unfollow(context.Background(), a.ID, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
	assert.Contains(t, err.Error(), "user to unfollow does not exist")
}

func TestSearch_EmptyQueryEqualsFollowing(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.addUser("ayse", "ayse@example.com")
	b := repo.addUser("bora", "bora@example.com")
	c := repo.addUser("cem", "cem@example.com")
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Follow(ctx, a.ID, c.ID))

	following, err := svc.GetFollowing(ctx, a.ID)
	require.NoError(t, err)

	matches, err := svc.Search(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Equal(t, following, matches)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	repo := newFakeUserRepo()
	a := repo.addUser("ayse", "ayse@example.com")
	b := repo.addUser("Bora", "bora@example.com")
	c := repo.addUser("cem", "cem@example.com")
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Follow(ctx, a.ID, c.ID))

	matches, err := svc.Search(ctx, a.ID, "bOR")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Bora", matches[0].Username)

	// search scope is the following list, not all users
	matches, err = svc.Search(ctx, a.ID, "ayse")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
