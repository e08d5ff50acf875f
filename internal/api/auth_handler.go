package api

import (
	"net/http"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/auth"
	"github.com/freshfest/gateway-api/internal/service/user"
)

// AuthHandler serves the authentication endpoints: SSO ticket exchange,
// token refresh, Google OAuth, and the authenticated profile lookup.
type AuthHandler struct {
	authSvc *auth.Service
	userSvc *user.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *auth.Service, userSvc *user.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc}
}

// VerifyTicket exchanges an SSO ticket for a credential pair.
func (h *AuthHandler) VerifyTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyTicket
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	cred, err := h.authSvc.VerifyTicket(r.Context(), req.Ticket)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cred)
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	u, err := h.userSvc.FindOne(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, u)
}

// RefreshToken redeems a refresh token for a fresh credential pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RedeemNewToken
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	cred, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cred)
}

// GoogleLogin returns the Google OAuth consent URL.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.authSvc.GetGoogleLoginURL(r.Context())
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.GoogleLoginURL{URL: url})
}

// VerifyGoogleLogin exchanges a Google OAuth authorization code for a
// credential pair.
func (h *AuthHandler) VerifyGoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyGoogleLogin
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	cred, err := h.authSvc.VerifyGoogleLogin(r.Context(), req.Code)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cred)
}
