package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshfest/gateway-api/internal/dto"
)

// Key type for context values
type ContextKey string

const (
	// CredentialContextKey is the context key for the resolved credential
	CredentialContextKey ContextKey = "credential"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetCredential stores the resolved credential in the context for the
// rest of the request.
func SetCredential(ctx context.Context, cred dto.TokenPayload) context.Context {
	return context.WithValue(ctx, CredentialContextKey, cred)
}

// GetCredential retrieves the resolved credential from the context.
// The second return is false on routes that ran without authentication.
func GetCredential(ctx context.Context) (dto.TokenPayload, bool) {
	cred, ok := ctx.Value(CredentialContextKey).(dto.TokenPayload)
	return cred, ok
}

// SetTraceID adds a trace ID to the context for correlating logs and
// error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
