// Package models — Reaction.
//
// A reaction is keyed by (user, post): one user holds at most one reaction
// per post, and reacting again replaces the type instead of adding a row.
package models

import "fmt"

// ReactionType is the kind of reaction, stored as its numeric code.
type ReactionType int

const (
	ReactionLike  ReactionType = 0
	ReactionLove  ReactionType = 1
	ReactionLaugh ReactionType = 2
	ReactionAnger ReactionType = 3
)

// Valid reports whether t is one of the defined reaction codes.
func (t ReactionType) Valid() bool {
	return t >= ReactionLike && t <= ReactionAnger
}

// Reaction represents a single per-(user, post) reaction marker.
type Reaction struct {
	UserID int64        `json:"user_id"`
	PostID int64        `json:"post_id"`
	Type   ReactionType `json:"type"`
}

// AddReactionRequest is the payload for setting a reaction on a post.
type AddReactionRequest struct {
	PostID int64        `json:"post_id"`
	Type   ReactionType `json:"type"`
}

// Validate checks the payload.
func (r *AddReactionRequest) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("invalid reaction type")
	}
	return nil
}
