// Package services — PostService: post CRUD and the feed projections.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
)

// AnonymousUserID is the viewer id used when nobody is logged in.
// The home feed for this viewer contains public posts only.
const AnonymousUserID = -1

// PostService is the post business-logic interface.
type PostService interface {
	// Create validates and persists a new post, stamping the creation time.
	Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)

	// Update replaces title, content, visibility and tag of an existing
	// post. Author, group and creation time never change.
	Update(ctx context.Context, id int64, req *models.UpdatePostRequest) error

	// Delete removes an existing post.
	Delete(ctx context.Context, id int64) error

	// GetByID returns a post, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// GetAll returns every post.
	GetAll(ctx context.Context) ([]models.Post, error)

	// GetByUserID returns a user's posts, newest first.
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)

	// GetByGroupID returns a group's posts, newest first.
	GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error)

	// HomeFeed returns the home feed for userID: own posts, public posts,
	// and followers-visible posts by followed authors, newest first.
	// userID == AnonymousUserID yields public posts only.
	HomeFeed(ctx context.Context, userID int64) ([]models.Post, error)

	// GroupsFeed returns posts from the groups userID belongs to.
	GroupsFeed(ctx context.Context, userID int64) ([]models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	now       func() time.Time
}

// NewPostService is the constructor.
// userRepo and groupRepo are needed to verify the author and the target
// group before a post is created.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
) PostService {
	return &postService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and persists a new post.
//
// Flow:
// 1. Shape validation — non-empty title, known visibility/tag codes
// 2. Author must exist
// 3. Group must exist — checked only when a group is targeted (GroupID != 0)
// 4. Insert with the current timestamp
func (s *postService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, notFoundAs(err, "user does not exist")
	}

	if req.GroupID != 0 {
		if _, err := s.groupRepo.GetByID(ctx, req.GroupID); err != nil {
			return nil, notFoundAs(err, "group does not exist")
		}
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  s.now(),
		UserID:     req.UserID,
		GroupID:    req.GroupID,
		Visibility: req.Visibility,
		Tag:        req.Tag,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id int64, req *models.UpdatePostRequest) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.postRepo.Update(ctx, id, req.Title, req.Content, req.Visibility, req.Tag)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *postService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *postService) GetAll(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *postService) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

func (s *postService) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	return s.postRepo.GetByGroupID(ctx, groupID)
}

func (s *postService) HomeFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.postRepo.HomeFeed(ctx, userID)
}

func (s *postService) GroupsFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.postRepo.GroupsFeed(ctx, userID)
}
