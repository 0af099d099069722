// Package models — Group.
//
// A group has one admin (a user) and many members via the group_users join
// table. Creating a group also makes the admin its first member.
package models

import (
	"fmt"
	"strings"
)

// Group represents a group.
type Group struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AdminID     int64  `json:"admin_id"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CreateGroupRequest is the payload for creating a group.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	AdminID     int64  `json:"admin_id"`
}

// Validate checks the creation payload. The name must be non-blank after
// trimming whitespace.
func (r *CreateGroupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	return nil
}

// UpdateGroupRequest overwrites every field of a group.
type UpdateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	AdminID     int64  `json:"admin_id"`
}

// Validate checks the update payload.
func (r *UpdateGroupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	return nil
}
