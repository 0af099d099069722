// Package main — handler layer wiring.
//
// Handlers are thin: HTTP parse + service call + response write.
package main

import (
	"time"

	"github.com/teambabes/socialapp/handlers"
	"github.com/teambabes/socialapp/pkg/ratelimit"
)

// Handlers holds every handler instance.
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Post     *handlers.PostHandler
	Group    *handlers.GroupHandler
	Comment  *handlers.CommentHandler
	Reaction *handlers.ReactionHandler
}

// initHandlers builds the handlers on top of the services.
// The login limiter allows 5 attempts per IP in a 2 minute window.
func initHandlers(svcs *Services) *Handlers {
	loginLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)

	return &Handlers{
		Auth:     handlers.NewAuthHandler(svcs.Auth, loginLimiter),
		User:     handlers.NewUserHandler(svcs.User),
		Post:     handlers.NewPostHandler(svcs.Post),
		Group:    handlers.NewGroupHandler(svcs.Group),
		Comment:  handlers.NewCommentHandler(svcs.Comment),
		Reaction: handlers.NewReactionHandler(svcs.Reaction),
	}
}
