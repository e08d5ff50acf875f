package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/redact"
)

// CredentialResolver resolves a bearer token into the identity behind it.
// The auth domain service satisfies this.
type CredentialResolver interface {
	Validate(ctx context.Context, token string) (dto.TokenPayload, error)
}

// AuthMiddleware resolves bearer tokens on inbound requests through the
// auth backend and injects the resulting credential into the request
// context.
type AuthMiddleware struct {
	resolver CredentialResolver
}

// NewAuthMiddleware creates an AuthMiddleware on the given resolver.
func NewAuthMiddleware(resolver CredentialResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate requires a valid bearer token. A missing or malformed
// Authorization header fails with 401; a token the auth backend rejects
// fails with 500, and the rejection is logged with the token's signature
// segment redacted so a log line never holds a usable credential.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cred, err := m.resolver.Validate(r.Context(), token)
		if err != nil {
			logRejectedToken(r.Context(), token)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := shared.SetCredential(r.Context(), cred)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate resolves a credential when one is presented but
// never fails the request: absent or rejected tokens simply leave the
// handler running anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		cred, err := m.resolver.Validate(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.SetCredential(r.Context(), cred)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// logRejectedToken records a failed validation for debugging. Tokens with
// the expected three-segment structure keep their first two segments so
// operators can decode the claims; anything else logs with no fragment of
// the input at all.
func logRejectedToken(ctx context.Context, token string) {
	redacted := redact.Token(token)
	if redacted == redact.MalformedTokenText {
		slog.ErrorContext(ctx, "invalid token")
		return
	}
	slog.ErrorContext(ctx, "unable to validate token", "token", redacted)
}
