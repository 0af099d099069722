package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teambabes/socialapp/database"
	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// sqliteGroupRepo is the SQLite implementation of GroupRepository.
// It holds the *sql.DB directly because Create needs a transaction.
type sqliteGroupRepo struct {
	db *sql.DB
}

// NewSQLiteGroupRepo is the constructor — returns the interface.
func NewSQLiteGroupRepo(db *sql.DB) GroupRepository {
	return &sqliteGroupRepo{db: db}
}

// Create inserts the group and makes the admin its first member.
//
// Both inserts run inside WithTx: a failure on the membership insert rolls
// the group row back too, so a group can never exist without its admin
// membership.
func (r *sqliteGroupRepo) Create(ctx context.Context, group *models.Group) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO groups (name, admin_id, image, description) VALUES (?, ?, ?, ?)`,
			group.Name, group.AdminID, group.Image, group.Description,
		)
		if err != nil {
			return fmt.Errorf("group create: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("group create last insert id: %w", err)
		}
		group.ID = id

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO group_users (group_id, user_id) VALUES (?, ?)`,
			group.ID, group.AdminID,
		); err != nil {
			return fmt.Errorf("group create admin membership: %w", err)
		}

		return nil
	})
}

func (r *sqliteGroupRepo) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `SELECT id, name, admin_id, image, description FROM groups WHERE id = ?`

	var g models.Group
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.AdminID, &g.Image, &g.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: group %d", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("group get by id: %w", err)
	}
	return &g, nil
}

func (r *sqliteGroupRepo) GetAll(ctx context.Context) ([]models.Group, error) {
	query := `SELECT id, name, admin_id, image, description FROM groups ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("group get all: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func (r *sqliteGroupRepo) GetGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	query := `SELECT id, name, admin_id, image, description FROM groups
	          WHERE id IN (SELECT group_id FROM group_users WHERE user_id = ?)
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("group get for user: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func (r *sqliteGroupRepo) GetUsersFromGroup(ctx context.Context, groupID int64) ([]models.User, error) {
	query := `SELECT id, username, email, password_hash, image FROM users
	          WHERE id IN (SELECT user_id FROM group_users WHERE group_id = ?)
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("group get members: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *sqliteGroupRepo) Update(ctx context.Context, id int64, name, description, image string, adminID int64) error {
	query := `UPDATE groups SET name = ?, admin_id = ?, description = ?, image = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, adminID, description, image, id)
	if err != nil {
		return fmt.Errorf("group update: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("group update rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: group %d", pkg.ErrNotFound, id)
	}
	return nil
}

func (r *sqliteGroupRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM groups WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("group delete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("group delete rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: group %d", pkg.ErrNotFound, id)
	}
	return nil
}

func (r *sqliteGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	query := `INSERT OR IGNORE INTO group_users (group_id, user_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, groupID, userID); err != nil {
		return fmt.Errorf("group add member: %w", err)
	}
	return nil
}

func (r *sqliteGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	query := `DELETE FROM group_users WHERE group_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return fmt.Errorf("group remove member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("group remove member rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %d is not a member of group %d", pkg.ErrNotFound, userID, groupID)
	}
	return nil
}

// scanGroups drains a group result set.
func scanGroups(rows *sql.Rows) ([]models.Group, error) {
	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.AdminID, &g.Image, &g.Description); err != nil {
			return nil, fmt.Errorf("group scan: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
