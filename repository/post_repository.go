package repository

import (
	"context"

	"github.com/teambabes/socialapp/models"
)

// PostRepository is the post store interface.
//
// Feed queries:
//
// HomeFeed(u) returns the union of
//   - posts by authors u follows with visibility followers (2) or public (3)
//   - u's own posts
//   - public posts (3)
//
// as one SELECT (deduplicated by construction), newest first. u == -1 means
// no logged-in viewer and returns public posts only.
//
// GroupsFeed(u) returns posts whose group u is a member of, newest first.
type PostRepository interface {
	// Create inserts a post and fills in the generated ID.
	Create(ctx context.Context, post *models.Post) error

	// GetByID returns the post with the given id, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// GetAll returns every post.
	GetAll(ctx context.Context) ([]models.Post, error)

	// GetByUserID returns the posts authored by userID, newest first.
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)

	// GetByGroupID returns the posts in groupID, newest first.
	GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error)

	// HomeFeed returns the home feed for userID (see package comment above).
	HomeFeed(ctx context.Context, userID int64) ([]models.Post, error)

	// GroupsFeed returns posts from every group userID belongs to.
	GroupsFeed(ctx context.Context, userID int64) ([]models.Post, error)

	// Update replaces title, content, visibility and tag. Author, group and
	// creation time are immutable.
	Update(ctx context.Context, id int64, title, content string, visibility models.PostVisibility, tag models.PostTag) error

	// Delete removes the post with the given id.
	Delete(ctx context.Context, id int64) error
}
