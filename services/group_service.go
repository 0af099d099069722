// Package services — GroupService: group CRUD and membership.
package services

import (
	"context"
	"fmt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
)

// GroupService is the group business-logic interface.
type GroupService interface {
	// Create validates and persists a new group. The admin becomes the
	// first member — group row and membership row are written atomically.
	Create(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error)

	// Update overwrites all fields of an existing group.
	Update(ctx context.Context, id int64, req *models.UpdateGroupRequest) error

	// Delete removes an existing group. The id must be positive.
	Delete(ctx context.Context, id int64) error

	// GetByID returns a group, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Group, error)

	// GetAll returns every group.
	GetAll(ctx context.Context) ([]models.Group, error)

	// GetGroupsForUser lists the groups userID belongs to.
	GetGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error)

	// GetUsersFromGroup lists the members of groupID.
	GetUsersFromGroup(ctx context.Context, groupID int64) ([]models.User, error)

	// Join adds userID to groupID. Joining twice is a no-op.
	Join(ctx context.Context, groupID, userID int64) error

	// Leave removes userID from groupID.
	Leave(ctx context.Context, groupID, userID int64) error
}

type groupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService is the constructor.
// userRepo is needed to verify the admin before creating or updating.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Create validates and persists a new group.
//
// Flow:
// 1. Shape validation — non-blank name (whitespace trimmed)
// 2. Admin must exist
// 3. Insert group + admin membership (single transaction in the store)
func (s *groupService) Create(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, req.AdminID); err != nil {
		return nil, notFoundAs(err, "user does not exist")
	}

	group := &models.Group{
		Name:        req.Name,
		AdminID:     req.AdminID,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Update overwrites all fields.
//
// Flow: group must exist, admin must exist, name must be non-blank.
func (s *groupService) Update(ctx context.Context, id int64, req *models.UpdateGroupRequest) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		return notFoundAs(err, "group does not exist")
	}
	if _, err := s.userRepo.GetByID(ctx, req.AdminID); err != nil {
		return notFoundAs(err, "user does not exist")
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	return s.groupRepo.Update(ctx, id, req.Name, req.Description, req.Image, req.AdminID)
}

func (s *groupService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: group id must be positive", pkg.ErrBadRequest)
	}
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		return notFoundAs(err, "group does not exist")
	}
	return s.groupRepo.Delete(ctx, id)
}

func (s *groupService) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *groupService) GetAll(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.GetAll(ctx)
}

func (s *groupService) GetGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	return s.groupRepo.GetGroupsForUser(ctx, userID)
}

func (s *groupService) GetUsersFromGroup(ctx context.Context, groupID int64) ([]models.User, error) {
	return s.groupRepo.GetUsersFromGroup(ctx, groupID)
}

func (s *groupService) Join(ctx context.Context, groupID, userID int64) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return notFoundAs(err, "group does not exist")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return notFoundAs(err, "user does not exist")
	}
	return s.groupRepo.AddMember(ctx, groupID, userID)
}

func (s *groupService) Leave(ctx context.Context, groupID, userID int64) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return notFoundAs(err, "group does not exist")
	}
	return s.groupRepo.RemoveMember(ctx, groupID, userID)
}
