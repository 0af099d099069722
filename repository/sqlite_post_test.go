package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

func TestPostRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	u := mustCreateUser(t, users, "ayse", "ayse@example.com")
	created := mustCreatePost(t, posts, u.ID, 0, "hello", models.VisibilityPublic, time.Now().UTC())
	require.NotZero(t, created.ID)

	got, err := posts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, int64(0), got.GroupID, "NULL group comes back as 0")
	assert.Equal(t, models.VisibilityPublic, got.Visibility)
}

func TestPostGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	posts := NewSQLitePostRepo(db.Conn)

	_, err := posts.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestPostUpdate_KeepsAuthorAndGroup(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	u := mustCreateUser(t, users, "ayse", "ayse@example.com")
	p := mustCreatePost(t, posts, u.ID, 0, "before", models.VisibilityPrivate, time.Now().UTC())

	err := posts.Update(ctx, p.ID, "after", "new content", models.VisibilityPublic, models.TagFood)
	require.NoError(t, err)

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, models.VisibilityPublic, got.Visibility)
	assert.Equal(t, models.TagFood, got.Tag)
	assert.Equal(t, u.ID, got.UserID)
}

func TestPostDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	posts := NewSQLitePostRepo(db.Conn)

	err := posts.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

// homeFeedFixture builds the graph the feed tests share:
//
//	viewer follows author. stranger is unrelated.
//	  p1: author, public
//	  p2: author, followers
//	  p3: author, private
//	  p4: viewer, private (own post — always visible to viewer)
//	  p5: stranger, public
//	  p6: stranger, followers (viewer does not follow stranger)
type homeFeedFixture struct {
	viewer, author, stranger *models.User
	p1, p2, p3, p4, p5, p6   *models.Post
}

func newHomeFeedFixture(t *testing.T, users UserRepository, posts PostRepository) homeFeedFixture {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fx := homeFeedFixture{}
	fx.viewer = mustCreateUser(t, users, "viewer", "viewer@example.com")
	fx.author = mustCreateUser(t, users, "author", "author@example.com")
	fx.stranger = mustCreateUser(t, users, "stranger", "stranger@example.com")

	require.NoError(t, users.Follow(ctx, fx.viewer.ID, fx.author.ID))

	fx.p1 = mustCreatePost(t, posts, fx.author.ID, 0, "p1", models.VisibilityPublic, base.Add(1*time.Minute))
	fx.p2 = mustCreatePost(t, posts, fx.author.ID, 0, "p2", models.VisibilityFollowers, base.Add(2*time.Minute))
	fx.p3 = mustCreatePost(t, posts, fx.author.ID, 0, "p3", models.VisibilityPrivate, base.Add(3*time.Minute))
	fx.p4 = mustCreatePost(t, posts, fx.viewer.ID, 0, "p4", models.VisibilityPrivate, base.Add(4*time.Minute))
	fx.p5 = mustCreatePost(t, posts, fx.stranger.ID, 0, "p5", models.VisibilityPublic, base.Add(5*time.Minute))
	fx.p6 = mustCreatePost(t, posts, fx.stranger.ID, 0, "p6", models.VisibilityFollowers, base.Add(6*time.Minute))
	return fx
}

func feedTitles(feed []models.Post) []string {
	titles := make([]string, 0, len(feed))
	for _, p := range feed {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestHomeFeed_LoggedInViewer(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)

	fx := newHomeFeedFixture(t, users, posts)

	feed, err := posts.HomeFeed(context.Background(), fx.viewer.ID)
	require.NoError(t, err)

	// p5 public, p4 own, p2 followed+followers, p1 followed+public — newest first.
	// p3 (followed but private) and p6 (followers but not followed) stay out.
	assert.Equal(t, []string{"p5", "p4", "p2", "p1"}, feedTitles(feed))
}

func TestHomeFeed_NoDuplicates(t *testing.T) {
	// A post matching several branches (followed author AND public) must
	// appear exactly once.
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)

	fx := newHomeFeedFixture(t, users, posts)

	feed, err := posts.HomeFeed(context.Background(), fx.viewer.ID)
	require.NoError(t, err)

	seen := map[int64]int{}
	for _, p := range feed {
		seen[p.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "post %d appeared %d times", id, n)
	}
}

func TestHomeFeed_Anonymous(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)

	newHomeFeedFixture(t, users, posts)

	feed, err := posts.HomeFeed(context.Background(), -1)
	require.NoError(t, err)

	// public posts only
	assert.Equal(t, []string{"p5", "p1"}, feedTitles(feed))
}

func TestHomeFeed_OwnPrivatePostVisible(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	u := mustCreateUser(t, users, "loner", "loner@example.com")
	mustCreatePost(t, posts, u.ID, 0, "mine", models.VisibilityPrivate, time.Now().UTC())

	feed, err := posts.HomeFeed(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, feedTitles(feed))
}

func TestGroupsFeed(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	groups := NewSQLiteGroupRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	admin := mustCreateUser(t, users, "admin", "admin@example.com")
	member := mustCreateUser(t, users, "member", "member@example.com")
	outsider := mustCreateUser(t, users, "outsider", "outsider@example.com")

	g1 := &models.Group{Name: "hikers", AdminID: admin.ID}
	require.NoError(t, groups.Create(ctx, g1))
	g2 := &models.Group{Name: "cooks", AdminID: admin.ID}
	require.NoError(t, groups.Create(ctx, g2))

	require.NoError(t, groups.AddMember(ctx, g1.ID, member.ID))

	mustCreatePost(t, posts, admin.ID, g1.ID, "in-g1", models.VisibilityGroups, base.Add(1*time.Minute))
	mustCreatePost(t, posts, admin.ID, g2.ID, "in-g2", models.VisibilityGroups, base.Add(2*time.Minute))
	mustCreatePost(t, posts, admin.ID, 0, "no-group", models.VisibilityPublic, base.Add(3*time.Minute))

	// member belongs to g1 only
	feed, err := posts.GroupsFeed(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"in-g1"}, feedTitles(feed))

	// admin is in both groups, newest first
	feed, err = posts.GroupsFeed(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"in-g2", "in-g1"}, feedTitles(feed))

	// outsider sees nothing
	feed, err = posts.GroupsFeed(ctx, outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestGetByUserID_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewSQLiteUserRepo(db.Conn)
	posts := NewSQLitePostRepo(db.Conn)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	u := mustCreateUser(t, users, "ayse", "ayse@example.com")
	mustCreatePost(t, posts, u.ID, 0, "old", models.VisibilityPublic, base)
	mustCreatePost(t, posts, u.ID, 0, "new", models.VisibilityPublic, base.Add(time.Hour))

	list, err := posts.GetByUserID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, feedTitles(list))
}
