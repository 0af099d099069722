// Package main — repository layer wiring.
package main

import (
	"github.com/teambabes/socialapp/database"
	"github.com/teambabes/socialapp/repository"
)

// Repositories holds every repository instance.
type Repositories struct {
	User     repository.UserRepository
	Post     repository.PostRepository
	Group    repository.GroupRepository
	Comment  repository.CommentRepository
	Reaction repository.ReactionRepository
}

// initRepos builds the repositories on top of the shared DB connection.
func initRepos(db *database.DB) *Repositories {
	return &Repositories{
		User:     repository.NewSQLiteUserRepo(db.Conn),
		Post:     repository.NewSQLitePostRepo(db.Conn),
		Group:    repository.NewSQLiteGroupRepo(db.Conn),
		Comment:  repository.NewSQLiteCommentRepo(db.Conn),
		Reaction: repository.NewSQLiteReactionRepo(db.Conn),
	}
}
