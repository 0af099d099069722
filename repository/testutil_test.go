package repository

// Shared setup for the SQLite repository tests: every test gets its own
// database file under t.TempDir(), with the real migrations applied, so
// the tests exercise the same schema production runs on.

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teambabes/socialapp/database"
	"github.com/teambabes/socialapp/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func mustCreateUser(t *testing.T, repo UserRepository, username, email string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func mustCreatePost(t *testing.T, repo PostRepository, userID, groupID int64, title string, vis models.PostVisibility, createdAt time.Time) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:      title,
		Content:    "content of " + title,
		CreatedAt:  createdAt,
		UserID:     userID,
		GroupID:    groupID,
		Visibility: vis,
		Tag:        models.TagMisc,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}
