package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// sqlitePostRepo is the SQLite implementation of PostRepository.
//
// group_id is NULL in the table for ungrouped posts; the Go side uses 0.
// The mapping happens only here.
type sqlitePostRepo struct {
	db *sql.DB
}

// NewSQLitePostRepo is the constructor — returns the interface.
func NewSQLitePostRepo(db *sql.DB) PostRepository {
	return &sqlitePostRepo{db: db}
}

const postColumns = `id, title, content, created_at, user_id, group_id, visibility, tag`

func (r *sqlitePostRepo) Create(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (title, content, created_at, user_id, group_id, visibility, tag)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.CreatedAt, post.UserID,
		nullableGroupID(post.GroupID), post.Visibility, post.Tag,
	)
	if err != nil {
		return fmt.Errorf("post create: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("post create last insert id: %w", err)
	}
	post.ID = id
	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: post %d", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("post get by id: %w", err)
	}
	return post, nil
}

func (r *sqlitePostRepo) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id DESC`
	return r.queryPosts(ctx, "post get all", query)
}

func (r *sqlitePostRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = ?
	          ORDER BY created_at DESC, id DESC`
	return r.queryPosts(ctx, "post get by user", query, userID)
}

func (r *sqlitePostRepo) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE group_id = ?
	          ORDER BY created_at DESC, id DESC`
	return r.queryPosts(ctx, "post get by group", query, groupID)
}

// HomeFeed is the one genuinely non-trivial query in the system.
//
// A post shows up for viewer u when any of these hold:
//   - the author is followed by u AND the post is followers- or public-visible
//   - u wrote it
//   - it is public
//
// One SELECT, so no duplicates even when several branches match.
// The anonymous viewer (-1) sees public posts only.
func (r *sqlitePostRepo) HomeFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	if userID == -1 {
		query := `SELECT ` + postColumns + ` FROM posts
		          WHERE visibility = ?
		          ORDER BY created_at DESC, id DESC`
		return r.queryPosts(ctx, "post home feed", query, models.VisibilityPublic)
	}

	query := `SELECT ` + postColumns + ` FROM posts
	          WHERE (user_id IN (SELECT user_id FROM user_followers WHERE follower_id = ?)
	                 AND visibility IN (?, ?))
	             OR user_id = ?
	             OR visibility = ?
	          ORDER BY created_at DESC, id DESC`

	return r.queryPosts(ctx, "post home feed", query,
		userID, models.VisibilityFollowers, models.VisibilityPublic,
		userID, models.VisibilityPublic,
	)
}

func (r *sqlitePostRepo) GroupsFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
	          WHERE group_id IN (SELECT group_id FROM group_users WHERE user_id = ?)
	          ORDER BY created_at DESC, id DESC`
	return r.queryPosts(ctx, "post groups feed", query, userID)
}

func (r *sqlitePostRepo) Update(ctx context.Context, id int64, title, content string, visibility models.PostVisibility, tag models.PostTag) error {
	query := `UPDATE posts SET title = ?, content = ?, visibility = ?, tag = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, title, content, visibility, tag, id)
	if err != nil {
		return fmt.Errorf("post update: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("post update rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post %d", pkg.ErrNotFound, id)
	}
	return nil
}

func (r *sqlitePostRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("post delete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("post delete rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post %d", pkg.ErrNotFound, id)
	}
	return nil
}

// queryPosts runs a list query and drains the rows; op names the caller for
// error messages.
func (r *sqlitePostRepo) queryPosts(ctx context.Context, op, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		var groupID sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UserID, &groupID, &p.Visibility, &p.Tag); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		p.GroupID = groupID.Int64
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// scanPost scans a single post row.
func scanPost(row *sql.Row) (*models.Post, error) {
	var p models.Post
	var groupID sql.NullInt64
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UserID, &groupID, &p.Visibility, &p.Tag); err != nil {
		return nil, err
	}
	p.GroupID = groupID.Int64
	return &p, nil
}

// nullableGroupID maps the Go-side "no group" sentinel 0 to SQL NULL.
func nullableGroupID(groupID int64) sql.NullInt64 {
	return sql.NullInt64{Int64: groupID, Valid: groupID != 0}
}
