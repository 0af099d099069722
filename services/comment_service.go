// Package services — CommentService.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
)

// CommentService is the comment business-logic interface.
type CommentService interface {
	// Create validates and persists a new comment, stamping the creation
	// time.
	Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)

	// Update replaces the content of an existing comment.
	Update(ctx context.Context, id int64, content string) error

	// Delete removes an existing comment.
	Delete(ctx context.Context, id int64) error

	// GetByID returns a comment, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Comment, error)

	// GetAll returns every comment.
	GetAll(ctx context.Context) ([]models.Comment, error)

	// GetByPostID returns the comments on a post, oldest first.
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewCommentService is the constructor.
// postRepo and userRepo are needed to verify the references on Create.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and persists a new comment.
//
// Flow:
// 1. Shape validation — non-empty content
// 2. Author must exist (checked before the post)
// 3. Post must exist
// 4. Insert with the current timestamp
func (s *commentService) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, notFoundAs(err, "user does not exist")
	}
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, notFoundAs(err, "post does not exist")
	}

	comment := &models.Comment{
		UserID:    req.UserID,
		PostID:    req.PostID,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the content only.
func (s *commentService) Update(ctx context.Context, id int64, content string) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return notFoundAs(err, "comment does not exist")
	}
	if content == "" {
		return fmt.Errorf("%w: comment content cannot be empty", pkg.ErrBadRequest)
	}
	return s.commentRepo.Update(ctx, id, content)
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return notFoundAs(err, "comment does not exist")
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *commentService) GetAll(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.GetAll(ctx)
}

func (s *commentService) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}
