// Package models defines the domain models: the Go side of the database
// tables plus the request payloads the API accepts.
package models

import (
	"fmt"
	"strings"
)

// User represents an account. Image is an opaque string — the client decides
// whether it holds base64 data or a URI; this layer stores it unchanged.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never serialized into API responses
	Image        string `json:"image"`
}

// CreateUserRequest is the payload for registering a user.
// The password arrives in whatever form the caller uses; hashing, when
// wanted, happens in the auth layer before this reaches the user service.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// Validate checks the creation payload. Username, email and password must be
// non-empty; the image is optional.
func (r *CreateUserRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if r.Email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if r.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// UpdateUserRequest overwrites every field of a user — no partial update.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
