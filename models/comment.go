// Package models — Comment.
package models

import (
	"fmt"
	"time"
)

// Comment represents a comment on a post.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the payload for adding a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
	PostID  int64  `json:"post_id"`
}

// Validate checks the creation payload.
func (r *CreateCommentRequest) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("comment content cannot be empty")
	}
	return nil
}
