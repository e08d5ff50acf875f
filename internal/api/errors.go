package api

import (
	"net/http"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
)

// RespondWithDomainError translates a domain error into its fixed HTTP
// status and public message, logging the underlying cause.
func RespondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, apperr.StatusCode(err), apperr.Message(err), err)
}

// credential pulls the authenticated caller out of the request context.
// Responds 401 and returns false when the auth middleware did not run.
func credential(w http.ResponseWriter, r *http.Request) (dto.TokenPayload, bool) {
	cred, ok := shared.GetCredential(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return dto.TokenPayload{}, false
	}
	return cred, true
}
