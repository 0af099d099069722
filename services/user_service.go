// Package services holds the business rules.
//
// Services sit between the HTTP handlers and the repositories: they validate
// input, check that referenced entities exist, then delegate to the store.
// They never see http.Request/Response and never run SQL themselves.
//
// A failed precondition returns before any mutation — an operation either
// fully succeeds or leaves the store untouched.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
)

// UserService is the user business-logic interface.
//
// The password in Create/Update is treated as an opaque hash value; hashing
// (when wanted) happens upstream in AuthService.
type UserService interface {
	// Create validates and persists a new user.
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)

	// Update overwrites all fields of an existing user.
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) error

	// Delete removes an existing user.
	Delete(ctx context.Context, id int64) error

	// GetByID returns a user, or pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail returns a user by email, or pkg.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetAll returns every user.
	GetAll(ctx context.Context) ([]models.User, error)

	// Follow records that followerID follows followeeID.
	Follow(ctx context.Context, followerID, followeeID int64) error

	// Unfollow removes the follow edge.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// GetFollowers lists the users following id.
	GetFollowers(ctx context.Context, id int64) ([]models.User, error)

	// GetFollowing lists the users id follows.
	GetFollowing(ctx context.Context, id int64) ([]models.User, error)

	// Search filters userID's following list by case-insensitive substring
	// match on username. The empty query matches everyone.
	Search(ctx context.Context, userID int64, query string) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService is the constructor.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create validates and persists a new user.
//
// Flow:
// 1. Shape validation — username, email, password non-empty
// 2. Insert
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.Password,
		Image:        req.Image,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites all fields — no partial update.
func (s *userService) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, id, req.Username, req.Email, req.Password, req.Image)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Follow records a directed follow edge.
//
// Flow:
// 1. Reject self-follow
// 2. Both users must exist
// 3. Insert the edge (idempotent at the store level)
func (s *userService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return fmt.Errorf("%w: cannot follow yourself", pkg.ErrBadRequest)
	}

	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return notFoundAs(err, "user does not exist")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return notFoundAs(err, "user to follow does not exist")
	}

	return s.userRepo.Follow(ctx, followerID, followeeID)
}

func (s *userService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return notFoundAs(err, "user does not exist")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return notFoundAs(err, "user to unfollow does not exist")
	}

	return s.userRepo.Unfollow(ctx, followerID, followeeID)
}

func (s *userService) GetFollowers(ctx context.Context, id int64) ([]models.User, error) {
	return s.userRepo.GetFollowers(ctx, id)
}

func (s *userService) GetFollowing(ctx context.Context, id int64) ([]models.User, error) {
	return s.userRepo.GetFollowing(ctx, id)
}

// Search filters the following list in memory — the list is small (people
// the user follows), so no dedicated SQL query is warranted.
func (s *userService) Search(ctx context.Context, userID int64, query string) ([]models.User, error) {
	following, err := s.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := []models.User{}
	for _, u := range following {
		if strings.Contains(strings.ToLower(u.Username), needle) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// notFoundAs rewords a repository not-found error without losing the
// sentinel; other errors pass through untouched.
func notFoundAs(err error, message string) error {
	if errors.Is(err, pkg.ErrNotFound) {
		return fmt.Errorf("%w: %s", pkg.ErrNotFound, message)
	}
	return err
}
