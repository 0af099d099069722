// Package handlers — GroupHandler: group CRUD and membership.
//
// Routes (bound in init_routes.go):
//
//	GET    /api/groups               → List
//	POST   /api/groups               → Create
//	GET    /api/groups/{id}          → Get
//	PUT    /api/groups/{id}          → Update
//	DELETE /api/groups/{id}          → Delete
//	GET    /api/groups/{id}/members  → Members
//	POST   /api/groups/{id}/join     → Join
//	DELETE /api/groups/{id}/join     → Leave
//	GET    /api/users/{id}/groups    → ForUser
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
	"github.com/teambabes/socialapp/services"
)

// GroupHandler serves the group endpoints.
type GroupHandler struct {
	groupService services.GroupService
}

// NewGroupHandler is the constructor.
func NewGroupHandler(groupService services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create godoc
// POST /api/groups
// The logged-in user becomes the admin and the first member.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.AdminID = user.ID

	group, err := h.groupService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, group)
}

// List godoc
// GET /api/groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, groups)
}

// Get godoc
// GET /api/groups/{id}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	group, err := h.groupService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, group)
}

// Update godoc
// PUT /api/groups/{id}
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.groupService.Update(r.Context(), id, &req); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "group updated"})
}

// Delete godoc
// DELETE /api/groups/{id}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.groupService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "group deleted"})
}

// Members godoc
// GET /api/groups/{id}/members
func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	members, err := h.groupService.GetUsersFromGroup(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, members)
}

// ForUser godoc
// GET /api/users/{id}/groups
func (h *GroupHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	groups, err := h.groupService.GetGroupsForUser(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, groups)
}

// Join godoc
// POST /api/groups/{id}/join
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	groupID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.groupService.Join(r.Context(), groupID, user.ID); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "joined group"})
}

// Leave godoc
// DELETE /api/groups/{id}/join
func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	groupID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.groupService.Leave(r.Context(), groupID, user.ID); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "left group"})
}
