package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/service/baan"
	"github.com/freshfest/gateway-api/internal/service/user"
)

// BaanHandler serves the baan catalogue endpoints.
type BaanHandler struct {
	baanSvc *baan.Service
	userSvc *user.Service
}

// NewBaanHandler creates a new BaanHandler.
func NewBaanHandler(baanSvc *baan.Service, userSvc *user.Service) *BaanHandler {
	return &BaanHandler{baanSvc: baanSvc, userSvc: userSvc}
}

// FindAll lists every baan.
func (h *BaanHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	baans, err := h.baanSvc.FindAll(r.Context())
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, baans)
}

// FindOne returns a single baan by ID.
func (h *BaanHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	baanID := chi.URLParam(r, "id")
	if baanID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	b, err := h.baanSvc.FindOne(r.Context(), baanID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, b)
}

// FindUserBaan returns the baan the authenticated user was assigned to.
func (h *BaanHandler) FindUserBaan(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	u, err := h.userSvc.FindOne(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}

	b, err := h.baanSvc.FindOne(r.Context(), u.BaanID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, b)
}
