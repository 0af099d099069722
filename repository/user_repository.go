// Package repository defines the store interfaces and their SQLite
// implementations — one interface file and one sqlite_*.go per entity.
//
// Contract shared by every repository:
//   - lookups that miss return pkg.ErrNotFound (never a nil result)
//   - mutations check RowsAffected and return pkg.ErrNotFound on zero
//   - every method takes a context and issues parameterized SQL only
package repository

import (
	"context"

	"github.com/teambabes/socialapp/models"
)

// UserRepository is the user store interface.
//
// The follow edge is directed: Follow(a, b) records that a follows b.
// GetFollowers(u) returns the users following u; GetFollowing(u) returns the
// users u follows.
type UserRepository interface {
	// Create inserts a user and fills in the generated ID.
	Create(ctx context.Context, user *models.User) error

	// GetByID returns the user with the given id, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail returns the user with the given email, or pkg.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetAll returns every user.
	GetAll(ctx context.Context) ([]models.User, error)

	// Update overwrites all fields of the user with the given id.
	Update(ctx context.Context, id int64, username, email, passwordHash, image string) error

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error

	// Follow records the directed edge "followerID follows followeeID".
	// Following someone already followed is a no-op.
	Follow(ctx context.Context, followerID, followeeID int64) error

	// Unfollow removes the edge; absent edges are a no-op.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// GetFollowers lists the users following userID.
	GetFollowers(ctx context.Context, userID int64) ([]models.User, error)

	// GetFollowing lists the users userID follows.
	GetFollowing(ctx context.Context, userID int64) ([]models.User, error)
}
