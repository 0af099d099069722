package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambabes/socialapp/pkg"
)

func TestUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	u := mustCreateUser(t, users, "ayse", "ayse@example.com")
	require.NotZero(t, u.ID)

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ayse", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)

	byEmail, err := users.GetByEmail(ctx, "ayse@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)

	_, err := users.GetByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestUserUpdateDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	err := users.Update(ctx, 99, "x", "x@example.com", "hash", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))

	err = users.Delete(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestFollowGraph(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	a := mustCreateUser(t, users, "ayse", "ayse@example.com")
	b := mustCreateUser(t, users, "bora", "bora@example.com")
	c := mustCreateUser(t, users, "cem", "cem@example.com")

	// a follows b, c follows b
	require.NoError(t, users.Follow(ctx, a.ID, b.ID))
	require.NoError(t, users.Follow(ctx, c.ID, b.ID))

	followers, err := users.GetFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := users.GetFollowing(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)

	// the edge is directed: b follows nobody
	following, err = users.GetFollowing(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollow_DuplicateEdgeIgnored(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	a := mustCreateUser(t, users, "ayse", "ayse@example.com")
	b := mustCreateUser(t, users, "bora", "bora@example.com")

	require.NoError(t, users.Follow(ctx, a.ID, b.ID))
	require.NoError(t, users.Follow(ctx, a.ID, b.ID))

	followers, err := users.GetFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 1)
}

func TestUnfollow_RemovesEdge(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	a := mustCreateUser(t, users, "ayse", "ayse@example.com")
	b := mustCreateUser(t, users, "bora", "bora@example.com")

	require.NoError(t, users.Follow(ctx, a.ID, b.ID))
	require.NoError(t, users.Unfollow(ctx, a.ID, b.ID))

	followers, err := users.GetFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
