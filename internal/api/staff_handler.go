package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/staff"
	"github.com/freshfest/gateway-api/internal/service/user"
)

// StaffHandler serves the staff-only endpoints: role check, freshy night
// door scanning, and attendee lookup.
type StaffHandler struct {
	staffSvc *staff.Service
	userSvc  *user.Service
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffSvc *staff.Service, userSvc *user.Service) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc, userSvc: userSvc}
}

// Check reports whether the authenticated user holds the staff role.
func (h *StaffHandler) Check(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	isStaff, err := h.staffSvc.IsStaff(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.IsStaffResponse{IsStaff: isStaff})
}

// CheckinFreshyNight redeems an attendee's freshy night ticket on the
// authenticated staff member's behalf.
func (h *StaffHandler) CheckinFreshyNight(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	success, err := h.staffSvc.CheckinFreshyNight(r.Context(), cred.UserID, userID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.CheckingFreshyNightResponse{Success: success})
}

// FindUser looks up an attendee's profile. The caller must hold the staff
// role; everyone else gets Forbidden regardless of whether the attendee
// exists.
func (h *StaffHandler) FindUser(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	isStaff, err := h.staffSvc.IsStaff(r.Context(), cred.UserID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	if !isStaff {
		RespondWithDomainError(w, r, apperr.ErrForbidden)
		return
	}

	u, err := h.userSvc.FindOne(r.Context(), userID)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, u)
}
