// Package main — HTTP route registration.
//
// initRoutes binds every endpoint to the mux. Middleware chain helpers:
//   - auth:     valid JWT required
//   - authOpt:  JWT resolved when present, anonymous otherwise
package main

import (
	"net/http"

	"github.com/teambabes/socialapp/middleware"
	"github.com/teambabes/socialapp/repository"
	"github.com/teambabes/socialapp/services"
)

// initRoutes builds the middleware chain and binds all endpoints.
//
// Route ordering rule: literal paths must come before parametric ones.
// "/api/users/search" is registered before "/api/users/{id}" so the router
// does not read "search" as an id.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}
	authOpt := func(handler http.HandlerFunc) http.Handler {
		return authMw.Optional(http.HandlerFunc(handler))
	}

	// Auth — public
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Users
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))
	mux.Handle("GET /api/users/search", auth(h.User.Search))
	mux.Handle("GET /api/users", auth(h.User.List))
	mux.Handle("GET /api/users/{id}", auth(h.User.Get))
	mux.Handle("PUT /api/users/{id}", auth(h.User.Update))
	mux.Handle("DELETE /api/users/{id}", auth(h.User.Delete))
	mux.Handle("POST /api/users/{id}/follow", auth(h.User.Follow))
	mux.Handle("DELETE /api/users/{id}/follow", auth(h.User.Unfollow))
	mux.Handle("GET /api/users/{id}/followers", auth(h.User.Followers))
	mux.Handle("GET /api/users/{id}/following", auth(h.User.Following))
	mux.Handle("GET /api/users/{id}/posts", auth(h.Post.ByUser))
	mux.Handle("GET /api/users/{id}/groups", auth(h.Group.ForUser))

	// Posts
	mux.Handle("GET /api/posts", auth(h.Post.List))
	mux.Handle("POST /api/posts", auth(h.Post.Create))
	mux.Handle("GET /api/posts/{id}", auth(h.Post.Get))
	mux.Handle("PUT /api/posts/{id}", auth(h.Post.Update))
	mux.Handle("DELETE /api/posts/{id}", auth(h.Post.Delete))
	mux.Handle("GET /api/posts/{id}/comments", auth(h.Comment.ByPost))
	mux.Handle("GET /api/posts/{id}/reactions", auth(h.Reaction.ForPost))
	mux.Handle("POST /api/posts/{id}/reactions", auth(h.Reaction.Set))
	mux.Handle("DELETE /api/posts/{id}/reactions", auth(h.Reaction.Remove))

	// Feeds — home works for anonymous viewers too
	mux.Handle("GET /api/feed/home", authOpt(h.Post.HomeFeed))
	mux.Handle("GET /api/feed/groups", auth(h.Post.GroupsFeed))

	// Groups
	mux.Handle("GET /api/groups", auth(h.Group.List))
	mux.Handle("POST /api/groups", auth(h.Group.Create))
	mux.Handle("GET /api/groups/{id}", auth(h.Group.Get))
	mux.Handle("PUT /api/groups/{id}", auth(h.Group.Update))
	mux.Handle("DELETE /api/groups/{id}", auth(h.Group.Delete))
	mux.Handle("GET /api/groups/{id}/members", auth(h.Group.Members))
	mux.Handle("POST /api/groups/{id}/join", auth(h.Group.Join))
	mux.Handle("DELETE /api/groups/{id}/join", auth(h.Group.Leave))
	mux.Handle("GET /api/groups/{id}/posts", auth(h.Post.ByGroup))

	// Comments
	mux.Handle("GET /api/comments", auth(h.Comment.List))
	mux.Handle("POST /api/comments", auth(h.Comment.Create))
	mux.Handle("GET /api/comments/{id}", auth(h.Comment.Get))
	mux.Handle("PUT /api/comments/{id}", auth(h.Comment.Update))
	mux.Handle("DELETE /api/comments/{id}", auth(h.Comment.Delete))

	// Reactions
	mux.Handle("GET /api/reactions", auth(h.Reaction.List))
}
