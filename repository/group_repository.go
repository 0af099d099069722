package repository

import (
	"context"

	"github.com/teambabes/socialapp/models"
)

// GroupRepository is the group store interface.
//
// Create is the only multi-statement write in the system: the group row and
// the admin's membership row go in together, atomically. A group must never
// exist without its admin as a member.
type GroupRepository interface {
	// Create inserts a group plus the admin membership row in one
	// transaction, and fills in the generated ID.
	Create(ctx context.Context, group *models.Group) error

	// GetByID returns the group with the given id, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Group, error)

	// GetAll returns every group.
	GetAll(ctx context.Context) ([]models.Group, error)

	// GetGroupsForUser lists the groups userID is a member of.
	GetGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error)

	// GetUsersFromGroup lists the members of groupID.
	GetUsersFromGroup(ctx context.Context, groupID int64) ([]models.User, error)

	// Update overwrites all fields of the group with the given id.
	Update(ctx context.Context, id int64, name, description, image string, adminID int64) error

	// Delete removes the group with the given id.
	Delete(ctx context.Context, id int64) error

	// AddMember inserts a membership row; joining twice is a no-op.
	AddMember(ctx context.Context, groupID, userID int64) error

	// RemoveMember deletes a membership row, or pkg.ErrNotFound when the
	// user is not a member.
	RemoveMember(ctx context.Context, groupID, userID int64) error
}
