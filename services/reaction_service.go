// Package services — ReactionService.
//
// Per (user, post) pair the reaction is a two-state machine: absent, or
// present with a type. Setting a reaction on a pair that already has one
// replaces the type in place — never a second row.
package services

import (
	"context"
	"fmt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
)

// ReactionService is the reaction business-logic interface.
type ReactionService interface {
	// Add sets userID's reaction on postID, inserting or replacing as
	// needed, and returns the persisted reaction. Repeating the call with
	// the same type is a no-op in terms of resulting state.
	Add(ctx context.Context, userID, postID int64, reactionType models.ReactionType) (*models.Reaction, error)

	// Delete removes userID's reaction on postID; pkg.ErrNotFound when
	// there is none.
	Delete(ctx context.Context, userID, postID int64) error

	// GetAll returns every reaction.
	GetAll(ctx context.Context) ([]models.Reaction, error)

	// GetForPost returns the reactions on a post; the UI computes per-type
	// counts from it.
	GetForPost(ctx context.Context, postID int64) ([]models.Reaction, error)
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

// NewReactionService is the constructor.
// postRepo is needed to verify the post before a reaction is set.
func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) ReactionService {
	return &reactionService{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
	}
}

// Add sets the reaction for a (user, post) pair.
//
// Flow:
// 1. Type validation
// 2. Post must exist
// 3. Atomic upsert — the store replaces the type when the pair already
//    reacted, so there is no read-then-write gap to race through
func (s *reactionService) Add(ctx context.Context, userID, postID int64, reactionType models.ReactionType) (*models.Reaction, error) {
	if !reactionType.Valid() {
		return nil, fmt.Errorf("%w: invalid reaction type", pkg.ErrBadRequest)
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, notFoundAs(err, "post does not exist")
	}

	reaction := &models.Reaction{
		UserID: userID,
		PostID: postID,
		Type:   reactionType,
	}
	if err := s.reactionRepo.Upsert(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// Delete removes the pair's reaction.
func (s *reactionService) Delete(ctx context.Context, userID, postID int64) error {
	return s.reactionRepo.DeleteByUserAndPost(ctx, userID, postID)
}

func (s *reactionService) GetAll(ctx context.Context) ([]models.Reaction, error) {
	return s.reactionRepo.GetAll(ctx)
}

func (s *reactionService) GetForPost(ctx context.Context, postID int64) ([]models.Reaction, error) {
	return s.reactionRepo.GetByPostID(ctx, postID)
}
