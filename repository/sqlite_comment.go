package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// sqliteCommentRepo is the SQLite implementation of CommentRepository.
type sqliteCommentRepo struct {
	db *sql.DB
}

// NewSQLiteCommentRepo is the constructor — returns the interface.
func NewSQLiteCommentRepo(db *sql.DB) CommentRepository {
	return &sqliteCommentRepo{db: db}
}

func (r *sqliteCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (user_id, post_id, content, created_at)
	          VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		comment.UserID, comment.PostID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("comment create: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("comment create last insert id: %w", err)
	}
	comment.ID = id
	return nil
}

func (r *sqliteCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT id, user_id, post_id, content, created_at FROM comments WHERE id = ?`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: comment %d", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("comment get by id: %w", err)
	}
	return &c, nil
}

func (r *sqliteCommentRepo) GetAll(ctx context.Context) ([]models.Comment, error) {
	query := `SELECT id, user_id, post_id, content, created_at FROM comments ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("comment get all: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *sqliteCommentRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `SELECT id, user_id, post_id, content, created_at FROM comments
	          WHERE post_id = ? ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("comment get by post: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *sqliteCommentRepo) Update(ctx context.Context, id int64, content string) error {
	query := `UPDATE comments SET content = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, content, id)
	if err != nil {
		return fmt.Errorf("comment update: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("comment update rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: comment %d", pkg.ErrNotFound, id)
	}
	return nil
}

func (r *sqliteCommentRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("comment delete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("comment delete rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: comment %d", pkg.ErrNotFound, id)
	}
	return nil
}

// scanComments drains a comment result set.
func scanComments(rows *sql.Rows) ([]models.Comment, error) {
	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("comment scan: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
