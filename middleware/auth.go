// Package middleware holds the layers a request passes through before its
// handler.
//
// A middleware in Go is a function:
//
//	func(next http.Handler) http.Handler
//
// It does its own work (here: token verification), then either calls next or
// writes an error and stops the chain.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/teambabes/socialapp/handlers"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/repository"
	"github.com/teambabes/socialapp/services"
)

// AuthMiddleware verifies JWT bearer tokens.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware is the constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Require rejects the request unless it carries a valid token.
//
// Header format: Authorization: Bearer <token>
//
// Flow:
// 1. Read the Authorization header
// 2. Strip the "Bearer " prefix
// 3. Verify the token
// 4. Load the user — the token may outlive a deleted account
// 5. Put the user into the context and call next
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found")
			return
		}

		// The hash must not travel in the context
		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional resolves the user when a valid token is present but lets the
// request through either way. Handlers that accept anonymous viewers (the
// home feed) check the context themselves.
//
// An invalid token is treated like no token — the request proceeds as
// anonymous rather than failing.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
