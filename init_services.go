// Package main — service layer wiring.
//
// Each service receives the repositories it needs through its constructor.
// Cross-entity existence checks (a comment needs its post, a post needs its
// author) are why several services hold more than one repository.
package main

import (
	"github.com/teambabes/socialapp/config"
	"github.com/teambabes/socialapp/services"
)

// Services holds every service instance.
type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Post     services.PostService
	Group    services.GroupService
	Comment  services.CommentService
	Reaction services.ReactionService
}

// initServices builds the services on top of the repositories.
func initServices(repos *Repositories, cfg *config.Config) *Services {
	userService := services.NewUserService(repos.User)

	return &Services{
		Auth:     services.NewAuthService(userService, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		User:     userService,
		Post:     services.NewPostService(repos.Post, repos.User, repos.Group),
		Group:    services.NewGroupService(repos.Group, repos.User),
		Comment:  services.NewCommentService(repos.Comment, repos.Post, repos.User),
		Reaction: services.NewReactionService(repos.Reaction, repos.Post),
	}
}
