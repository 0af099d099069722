// Package models — Post and its enums.
//
// Visibility and tag are stored as their numeric codes; the home feed query
// filters on the raw numbers (visibility IN (2, 3), 3 = public), so the
// values here are load-bearing and must not be reordered.
package models

import (
	"fmt"
	"time"
)

// PostVisibility controls which viewers a post appears to.
type PostVisibility int

const (
	VisibilityPrivate   PostVisibility = 0
	VisibilityGroups    PostVisibility = 1
	VisibilityFollowers PostVisibility = 2
	VisibilityPublic    PostVisibility = 3
)

// Valid reports whether v is one of the defined visibility codes.
func (v PostVisibility) Valid() bool {
	return v >= VisibilityPrivate && v <= VisibilityPublic
}

// PostTag categorizes a post.
type PostTag int

const (
	TagMisc    PostTag = 0
	TagFood    PostTag = 1
	TagWorkout PostTag = 2
	TagTravel  PostTag = 3
)

// Valid reports whether t is one of the defined tag codes.
func (t PostTag) Valid() bool {
	return t >= TagMisc && t <= TagTravel
}

// Post represents a post. GroupID is 0 for posts outside any group (stored
// as NULL). Content may carry text or an image:// marker — opaque here.
// Author, group and creation time are immutable after creation.
type Post struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	CreatedAt  time.Time      `json:"created_at"`
	UserID     int64          `json:"user_id"`
	GroupID    int64          `json:"group_id"`
	Visibility PostVisibility `json:"visibility"`
	Tag        PostTag        `json:"tag"`
}

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	UserID     int64          `json:"user_id"`
	GroupID    int64          `json:"group_id"`
	Visibility PostVisibility `json:"visibility"`
	Tag        PostTag        `json:"tag"`
}

// Validate checks the creation payload. Existence of the author and group is
// the service's job; this only checks the shape.
func (r *CreatePostRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("post title cannot be empty")
	}
	if !r.Visibility.Valid() {
		return fmt.Errorf("invalid post visibility")
	}
	if !r.Tag.Valid() {
		return fmt.Errorf("invalid post tag")
	}
	return nil
}

// UpdatePostRequest replaces title, content, visibility and tag.
type UpdatePostRequest struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Visibility PostVisibility `json:"visibility"`
	Tag        PostTag        `json:"tag"`
}

// Validate checks the update payload.
func (r *UpdatePostRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("post title cannot be empty")
	}
	if !r.Visibility.Valid() {
		return fmt.Errorf("invalid post visibility")
	}
	if !r.Tag.Valid() {
		return fmt.Errorf("invalid post tag")
	}
	return nil
}
