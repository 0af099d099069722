// Package pkg holds small utilities shared across layers.
// This file defines the domain-level error values.
//
// Services return these sentinels wrapped with fmt.Errorf("%w: detail", ...).
// Callers compare with errors.Is, so matching works through the wrap chain
// and never depends on message text.
package pkg

import "errors"

// Domain-level errors.
// ErrBadRequest covers malformed input (blank username, empty content,
// non-positive id). ErrNotFound covers ids that do not resolve in the store.
// The handler layer maps these to HTTP status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
