package repository

import (
	"context"

	"github.com/teambabes/socialapp/models"
)

// ReactionRepository is the reaction store interface.
//
// Upsert relies on the (user_id, post_id) primary key: inserting over an
// existing pair replaces the type in place, so two concurrent calls for the
// same pair cannot produce duplicate rows. No separate existence check is
// needed (or wanted — a read-then-write gap would reopen the race).
type ReactionRepository interface {
	// Upsert inserts the reaction or, when the (user, post) pair already
	// has one, replaces its type.
	Upsert(ctx context.Context, reaction *models.Reaction) error

	// GetByUserAndPost returns the pair's reaction, or pkg.ErrNotFound.
	GetByUserAndPost(ctx context.Context, userID, postID int64) (*models.Reaction, error)

	// GetAll returns every reaction.
	GetAll(ctx context.Context) ([]models.Reaction, error)

	// GetByPostID returns the reactions on postID. The UI derives per-type
	// counts from this list.
	GetByPostID(ctx context.Context, postID int64) ([]models.Reaction, error)

	// DeleteByUserAndPost removes the pair's reaction, or pkg.ErrNotFound
	// when there is none.
	DeleteByUserAndPost(ctx context.Context, userID, postID int64) error
}
