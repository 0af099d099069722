package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// sqliteUserRepo is the SQLite implementation of UserRepository.
type sqliteUserRepo struct {
	db *sql.DB
}

// NewSQLiteUserRepo is the constructor — returns the interface.
func NewSQLiteUserRepo(db *sql.DB) UserRepository {
	return &sqliteUserRepo{db: db}
}

func (r *sqliteUserRepo) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, image)
	          VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Image)
	if err != nil {
		return fmt.Errorf("user create: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("user create last insert id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *sqliteUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users WHERE id = ?`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("user get by id: %w", err)
	}
	return &u, nil
}

func (r *sqliteUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users WHERE email = ?`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user with email %s", pkg.ErrNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("user get by email: %w", err)
	}
	return &u, nil
}

func (r *sqliteUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("user get all: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *sqliteUserRepo) Update(ctx context.Context, id int64, username, email, passwordHash, image string) error {
	query := `UPDATE users SET username = ?, email = ?, password_hash = ?, image = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, username, email, passwordHash, image, id)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user update rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %d", pkg.ErrNotFound, id)
	}
	return nil
}

func (r *sqliteUserRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("user delete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user delete rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %d", pkg.ErrNotFound, id)
	}
	return nil
}

// Follow inserts the directed edge "followerID follows followeeID".
// INSERT OR IGNORE makes repeated follows a no-op — the composite primary
// key on (user_id, follower_id) dedupes at the store level.
func (r *sqliteUserRepo) Follow(ctx context.Context, followerID, followeeID int64) error {
	query := `INSERT OR IGNORE INTO user_followers (user_id, follower_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, followeeID, followerID); err != nil {
		return fmt.Errorf("user follow: %w", err)
	}
	return nil
}

func (r *sqliteUserRepo) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM user_followers WHERE user_id = ? AND follower_id = ?`

	if _, err := r.db.ExecContext(ctx, query, followeeID, followerID); err != nil {
		return fmt.Errorf("user unfollow: %w", err)
	}
	return nil
}

func (r *sqliteUserRepo) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users
	          WHERE id IN (SELECT follower_id FROM user_followers WHERE user_id = ?)
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("user get followers: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *sqliteUserRepo) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users
	          WHERE id IN (SELECT user_id FROM user_followers WHERE follower_id = ?)
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("user get following: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// scanUsers drains a user result set; shared by the list queries.
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Image); err != nil {
			return nil, fmt.Errorf("user scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
