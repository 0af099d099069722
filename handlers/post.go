// Package handlers — PostHandler: post CRUD and the two feeds.
//
// Routes (bound in init_routes.go):
//
//	GET    /api/posts            → List
//	POST   /api/posts            → Create
//	GET    /api/posts/{id}       → Get
//	PUT    /api/posts/{id}       → Update
//	DELETE /api/posts/{id}       → Delete
//	GET    /api/users/{id}/posts → ByUser
//	GET    /api/groups/{id}/posts→ ByGroup
//	GET    /api/feed/home        → HomeFeed (anonymous allowed)
//	GET    /api/feed/groups      → GroupsFeed
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/services"
)

// PostHandler serves the post endpoints.
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler is the constructor.
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create godoc
// POST /api/posts
// The author is always the logged-in user, never taken from the body.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = user.ID

	post, err := h.postService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, post)
}

// List godoc
// GET /api/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// Get godoc
// GET /api/posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, post)
}

// Update godoc
// PUT /api/posts/{id}
// Replaces title, content, visibility and tag. Author and group stay fixed.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.postService.Update(r.Context(), id, &req); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "post updated"})
}

// Delete godoc
// DELETE /api/posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// ByUser godoc
// GET /api/users/{id}/posts
func (h *PostHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	posts, err := h.postService.GetByUserID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// ByGroup godoc
// GET /api/groups/{id}/posts
func (h *PostHandler) ByGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	posts, err := h.postService.GetByGroupID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// HomeFeed godoc
// GET /api/feed/home
//
// Works with or without a token. Without one the viewer is anonymous and the
// feed contains public posts only — the optional-auth middleware simply does
// not put a user into the context.
func (h *PostHandler) HomeFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := int64(services.AnonymousUserID)
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok {
		viewerID = user.ID
	}

	posts, err := h.postService.HomeFeed(r.Context(), viewerID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// GroupsFeed godoc
// GET /api/feed/groups
// Posts from every group the logged-in user belongs to.
func (h *PostHandler) GroupsFeed(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	posts, err := h.postService.GroupsFeed(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}
