package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/group"
)

// GroupHandler serves the baan-selection group endpoints.
type GroupHandler struct {
	groupSvc *group.Service
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupSvc *group.Service) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// FindOne returns the group the authenticated user belongs to.
func (h *GroupHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	g, err := h.groupSvc.FindOne(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, g)
}

// FindByToken returns a group overview for an invite token. Public: invitees
// preview the group before joining.
func (h *GroupHandler) FindByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	g, err := h.groupSvc.FindByToken(r.Context(), token)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, g)
}

// Join moves the authenticated user into the group behind the invite token.
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	token := chi.URLParam(r, "token")
	if token == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	g, err := h.groupSvc.Join(r.Context(), token, cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, g)
}

// DeleteMember removes a member from the caller's group. Only the leader may
// do this; the backend enforces it.
func (h *GroupHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	memberID := chi.URLParam(r, "member_id")
	if memberID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	g, err := h.groupSvc.DeleteMember(r.Context(), cred.UserID, memberID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, g)
}

// Leave removes the authenticated user from their current group and returns
// the fresh single-member group they land in.
func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	g, err := h.groupSvc.Leave(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, g)
}

// SelectBaans records the group's ranked baan preference list.
func (h *GroupHandler) SelectBaans(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var req dto.SelectBaan
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	success, err := h.groupSvc.SelectBaans(r.Context(), cred.UserID, req.Baans)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"success": success})
}
