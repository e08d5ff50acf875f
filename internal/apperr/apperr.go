// Package apperr defines the gateway's closed set of client-facing error
// kinds and the translation from backend gRPC failures into that set.
// Handlers and services only ever branch on these kinds, never on raw
// backend codes.
package apperr

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for each client-facing kind. Every domain service
// operation fails with one of these (possibly wrapped), or with a
// *MessageError for validation failures that need to say what went wrong.
var (
	ErrServiceDown    = errors.New("service down")
	ErrInternalServer = errors.New("internal server error")
	ErrTimeout        = errors.New("request time out")
	ErrDuplicated     = errors.New("duplicated")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)

// MessageError is an error kind with an explicit status code and
// client-visible message. It is reserved for gateway-edge validation
// problems (malformed multipart fields, operational refusals) where the
// fixed kind messages are not specific enough.
type MessageError struct {
	Status  int
	Message string
}

func (e *MessageError) Error() string {
	return e.Message
}

// WithMessage builds a MessageError carrying the given status and text.
func WithMessage(statusCode int, message string) error {
	return &MessageError{Status: statusCode, Message: message}
}

// FromRPC translates a backend gRPC error into one of the gateway kinds.
// The mapping is total over the gRPC code space; codes.OK never reaches
// here on the error path and is treated as a programming error
// (InternalServer) if it somehow does.
func FromRPC(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return ErrInternalServer
	}

	switch st.Code() {
	case codes.Canceled, codes.Unknown, codes.Aborted, codes.Unavailable:
		return ErrServiceDown
	case codes.InvalidArgument, codes.ResourceExhausted, codes.FailedPrecondition,
		codes.OutOfRange, codes.Unimplemented:
		return ErrBadRequest
	case codes.DeadlineExceeded:
		return ErrTimeout
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrDuplicated
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.Internal, codes.DataLoss:
		return ErrInternalServer
	case codes.Unauthenticated:
		return ErrUnauthorized
	default:
		// codes.OK or a code this gateway has never heard of.
		return ErrInternalServer
	}
}

// IsRPCNotFound reports whether err is a backend NotFound. Several
// existence checks (check-in, redemption) treat that as a normal state
// rather than a failure.
func IsRPCNotFound(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.NotFound
}

// StatusCode maps a gateway error kind to its fixed HTTP status code.
// Unrecognized errors fall back to 500 so nothing internal ever leaks
// through an unmapped path.
func StatusCode(err error) int {
	var msgErr *MessageError
	if errors.As(err, &msgErr) {
		return msgErr.Status
	}

	switch {
	case errors.Is(err, ErrServiceDown):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInternalServer):
		return http.StatusInternalServerError
	case errors.Is(err, ErrTimeout):
		return http.StatusRequestTimeout
	case errors.Is(err, ErrDuplicated):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for a gateway error kind.
// Everything outside the closed set collapses to the generic internal
// message; raw backend error text never reaches a client.
func Message(err error) string {
	var msgErr *MessageError
	if errors.As(err, &msgErr) {
		return msgErr.Message
	}

	switch {
	case errors.Is(err, ErrServiceDown):
		return "Service down"
	case errors.Is(err, ErrInternalServer):
		return "Internal server error"
	case errors.Is(err, ErrTimeout):
		return "Request time out"
	case errors.Is(err, ErrDuplicated):
		return "Duplicated"
	case errors.Is(err, ErrBadRequest):
		return "Bad request"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	default:
		return "Internal server error"
	}
}
