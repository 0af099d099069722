// Package handlers — ReactionHandler.
//
// Thin handler pattern: HTTP parse + response only, the set-or-replace rule
// lives in ReactionService.
//
// Routes (bound in init_routes.go):
//
//	GET    /api/reactions            → List
//	GET    /api/posts/{id}/reactions → ForPost
//	POST   /api/posts/{id}/reactions → Set
//	DELETE /api/posts/{id}/reactions → Remove
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/services"
)

// ReactionHandler serves the reaction endpoints.
type ReactionHandler struct {
	reactionService services.ReactionService
}

// NewReactionHandler is the constructor.
func NewReactionHandler(reactionService services.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// setReactionRequest is the JSON body for Set.
type setReactionRequest struct {
	Type models.ReactionType `json:"type"`
}

// Set godoc
// POST /api/posts/{id}/reactions
// Body: { "type": 0 }
//
// Sets the logged-in user's reaction on the post. A second call with a
// different type replaces the first — one reaction per user per post.
func (h *ReactionHandler) Set(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var body setReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reaction, err := h.reactionService.Add(r.Context(), user.ID, postID, body.Type)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, reaction)
}

// Remove godoc
// DELETE /api/posts/{id}/reactions
// Removes the logged-in user's reaction. 404 when there is none.
func (h *ReactionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.reactionService.Delete(r.Context(), user.ID, postID); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "reaction removed"})
}

// List godoc
// GET /api/reactions
func (h *ReactionHandler) List(w http.ResponseWriter, r *http.Request) {
	reactions, err := h.reactionService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, reactions)
}

// ForPost godoc
// GET /api/posts/{id}/reactions
// The client computes per-type counts from the returned list.
func (h *ReactionHandler) ForPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	reactions, err := h.reactionService.GetForPost(r.Context(), postID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, reactions)
}
