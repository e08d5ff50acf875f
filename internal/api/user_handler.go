package api

import (
	"net/http"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/user"
)

// UserHandler serves the profile update endpoint.
type UserHandler struct {
	userSvc *user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc *user.Service) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Update applies a partial profile update for the authenticated user. The
// target user ID always comes from the credential, never from the body.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUser
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	u, err := h.userSvc.Update(r.Context(), cred.UserID, req)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, u)
}
