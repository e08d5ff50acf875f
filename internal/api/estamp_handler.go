package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/estamp"
)

// EstampHandler serves the e-stamp collection and reward redemption
// endpoints.
type EstampHandler struct {
	estampSvc *estamp.Service
}

// NewEstampHandler creates a new EstampHandler.
func NewEstampHandler(estampSvc *estamp.Service) *EstampHandler {
	return &EstampHandler{estampSvc: estampSvc}
}

// FindAll lists every stamp event. Public so the event map renders without
// a login.
func (h *EstampHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.estampSvc.GetAllEstamps(r.Context())
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.GetAllEstampResponse{Events: events})
}

// FindUserEstamps lists the stamps the authenticated user collected.
func (h *EstampHandler) FindUserEstamps(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	events, err := h.estampSvc.GetUserEstamps(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.GetUserEstampsResponse{Events: events})
}

// Claim collects the stamp behind the scanned token for the authenticated
// user and returns the stamp's event detail.
func (h *EstampHandler) Claim(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	token := chi.URLParam(r, "token")
	if token == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	event, err := h.estampSvc.ClaimEstamp(r.Context(), cred.UserID, token)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// HasRedeemItem reports whether the authenticated user already redeemed the
// completion reward.
func (h *EstampHandler) HasRedeemItem(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	redeemed, err := h.estampSvc.HasRedeemItem(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.HasRedeemItemResponse{Redeemed: redeemed})
}

// RedeemItem redeems the completion reward for the authenticated user.
func (h *EstampHandler) RedeemItem(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	success, err := h.estampSvc.RedeemItem(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.RedeemItemResponse{Success: success})
}
