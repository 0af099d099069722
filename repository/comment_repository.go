package repository

import (
	"context"

	"github.com/teambabes/socialapp/models"
)

// CommentRepository is the comment store interface.
type CommentRepository interface {
	// Create inserts a comment and fills in the generated ID.
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID returns the comment with the given id, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Comment, error)

	// GetAll returns every comment.
	GetAll(ctx context.Context) ([]models.Comment, error)

	// GetByPostID returns the comments on postID, oldest first.
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)

	// Update replaces the content only.
	Update(ctx context.Context, id int64, content string) error

	// Delete removes the comment with the given id.
	Delete(ctx context.Context, id int64) error
}
