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

// sqliteReactionRepo is the SQLite implementation of ReactionRepository.
// It takes a TxQuerier, so the same implementation works against the pool
// or inside a transaction.
type sqliteReactionRepo struct {
	db database.TxQuerier
}

// NewSQLiteReactionRepo is the constructor — returns the interface.
func NewSQLiteReactionRepo(db database.TxQuerier) ReactionRepository {
	return &sqliteReactionRepo{db: db}
}

// Upsert sets the reaction type for a (user, post) pair.
//
// ON CONFLICT on the composite primary key turns the insert into an update
// when the pair already reacted — one atomic statement, no check-then-act
// gap between an existence read and the write.
func (r *sqliteReactionRepo) Upsert(ctx context.Context, reaction *models.Reaction) error {
	query := `INSERT INTO reactions (user_id, post_id, type) VALUES (?, ?, ?)
	          ON CONFLICT(user_id, post_id) DO UPDATE SET type = excluded.type`

	if _, err := r.db.ExecContext(ctx, query, reaction.UserID, reaction.PostID, reaction.Type); err != nil {
		return fmt.Errorf("reaction upsert: %w", err)
	}
	return nil
}

func (r *sqliteReactionRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*models.Reaction, error) {
	query := `SELECT user_id, post_id, type FROM reactions WHERE user_id = ? AND post_id = ?`

	var re models.Reaction
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(&re.UserID, &re.PostID, &re.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: reaction by user %d on post %d", pkg.ErrNotFound, userID, postID)
	}
	if err != nil {
		return nil, fmt.Errorf("reaction get by user and post: %w", err)
	}
	return &re, nil
}

func (r *sqliteReactionRepo) GetAll(ctx context.Context) ([]models.Reaction, error) {
	query := `SELECT user_id, post_id, type FROM reactions`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reaction get all: %w", err)
	}
	defer rows.Close()

	return scanReactions(rows)
}

func (r *sqliteReactionRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Reaction, error) {
	query := `SELECT user_id, post_id, type FROM reactions WHERE post_id = ?`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("reaction get by post: %w", err)
	}
	defer rows.Close()

	return scanReactions(rows)
}

// DeleteByUserAndPost removes a reaction; RowsAffected distinguishes
// "deleted" from "was never there".
func (r *sqliteReactionRepo) DeleteByUserAndPost(ctx context.Context, userID, postID int64) error {
	query := `DELETE FROM reactions WHERE user_id = ? AND post_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("reaction delete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reaction delete rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: reaction does not exist", pkg.ErrNotFound)
	}
	return nil
}

// scanReactions drains a reaction result set.
func scanReactions(rows *sql.Rows) ([]models.Reaction, error) {
	reactions := []models.Reaction{}
	for rows.Next() {
		var re models.Reaction
		if err := rows.Scan(&re.UserID, &re.PostID, &re.Type); err != nil {
			return nil, fmt.Errorf("reaction scan: %w", err)
		}
		reactions = append(reactions, re)
	}
	return reactions, rows.Err()
}
