package api

import (
	"net/http"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/checkin"
)

// CheckinHandler serves the event-day check-in endpoints.
type CheckinHandler struct {
	checkinSvc *checkin.Service
}

// NewCheckinHandler creates a new CheckinHandler.
func NewCheckinHandler(checkinSvc *checkin.Service) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc}
}

// HasCheckin reports whether the authenticated user already checked in on
// the configured event day.
func (h *CheckinHandler) HasCheckin(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	has, err := h.checkinSvc.HasCheckin(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.HasCheckinResponse{HasCheckin: has})
}

// Checkin records the authenticated user's check-in for the configured
// event day.
func (h *CheckinHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	success, err := h.checkinSvc.Checkin(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.CheckinResponse{Success: success})
}

// FreshyNight reports whether the authenticated user's freshy night ticket
// has already been redeemed at the door.
func (h *CheckinHandler) FreshyNight(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	redeemed, err := h.checkinSvc.IsFreshyNightTicketRedeemed(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.IsFreshyNightTicketRedeemedResponse{Redeemed: redeemed})
}
