// Package handlers — CommentHandler.
//
// Routes (bound in init_routes.go):
//
//	GET    /api/comments            → List
//	POST   /api/comments            → Create
//	GET    /api/comments/{id}       → Get
//	PUT    /api/comments/{id}       → Update
//	DELETE /api/comments/{id}       → Delete
//	GET    /api/posts/{id}/comments → ByPost
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/services"
)

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler is the constructor.
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// updateCommentRequest is the JSON body for Update.
type updateCommentRequest struct {
	Content string `json:"content"`
}

// Create godoc
// POST /api/comments
// Body: { "postId": 1, "content": "..." } — the author is the logged-in user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = user.ID

	comment, err := h.commentService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, comment)
}

// List godoc
// GET /api/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, comments)
}

// Get godoc
// GET /api/comments/{id}
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	comment, err := h.commentService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, comment)
}

// Update godoc
// PUT /api/comments/{id}
// Body: { "content": "..." }
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var body updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.commentService.Update(r.Context(), id, body.Content); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "comment updated"})
}

// Delete godoc
// DELETE /api/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

// ByPost godoc
// GET /api/posts/{id}/comments
// Oldest first — comment threads read top-down.
func (h *CommentHandler) ByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	comments, err := h.commentService.GetByPostID(r.Context(), postID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, comments)
}
