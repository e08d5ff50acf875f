package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/freshfest/gateway-api/internal/apperr"
)

func TestFromRPC(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		code codes.Code
		want error
	}{
		{codes.Canceled, apperr.ErrServiceDown},
		{codes.Unknown, apperr.ErrServiceDown},
		{codes.Aborted, apperr.ErrServiceDown},
		{codes.Unavailable, apperr.ErrServiceDown},
		{codes.InvalidArgument, apperr.ErrBadRequest},
		{codes.ResourceExhausted, apperr.ErrBadRequest},
		{codes.FailedPrecondition, apperr.ErrBadRequest},
		{codes.OutOfRange, apperr.ErrBadRequest},
		{codes.Unimplemented, apperr.ErrBadRequest},
		{codes.DeadlineExceeded, apperr.ErrTimeout},
		{codes.NotFound, apperr.ErrNotFound},
		{codes.AlreadyExists, apperr.ErrDuplicated},
		{codes.PermissionDenied, apperr.ErrForbidden},
		{codes.Internal, apperr.ErrInternalServer},
		{codes.DataLoss, apperr.ErrInternalServer},
		{codes.Unauthenticated, apperr.ErrUnauthorized},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.code.String(), func(t *testing.T) {
			t.Parallel()

			got := apperr.FromRPC(status.Error(tc.code, "backend detail"))
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestFromRPC_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, apperr.FromRPC(nil))
}

func TestFromRPC_NonStatusError(t *testing.T) {
	t.Parallel()

	got := apperr.FromRPC(errors.New("plain failure"))
	assert.ErrorIs(t, got, apperr.ErrInternalServer)
}

func TestFromRPC_NeverLeaksBackendDetail(t *testing.T) {
	t.Parallel()

	got := apperr.FromRPC(status.Error(codes.Internal, "pq: connection refused"))
	assert.NotContains(t, apperr.Message(got), "pq")
}

func TestIsRPCNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, apperr.IsRPCNotFound(status.Error(codes.NotFound, "no row")))
	assert.False(t, apperr.IsRPCNotFound(status.Error(codes.Internal, "boom")))
	assert.False(t, apperr.IsRPCNotFound(errors.New("plain failure")))
}

func TestStatusCodeAndMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{apperr.ErrServiceDown, http.StatusServiceUnavailable, "Service down"},
		{apperr.ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
		{apperr.ErrTimeout, http.StatusRequestTimeout, "Request time out"},
		{apperr.ErrDuplicated, http.StatusConflict, "Duplicated"},
		{apperr.ErrBadRequest, http.StatusBadRequest, "Bad request"},
		{apperr.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{apperr.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{apperr.ErrNotFound, http.StatusNotFound, "Not found"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.wantMsg, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantStatus, apperr.StatusCode(tc.err))
			assert.Equal(t, tc.wantMsg, apperr.Message(tc.err))
		})
	}
}

func TestStatusCodeAndMessage_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("find baan: %w", apperr.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(wrapped))
	assert.Equal(t, "Not found", apperr.Message(wrapped))
}

func TestStatusCodeAndMessage_Unknown(t *testing.T) {
	t.Parallel()

	err := errors.New("something nobody mapped")
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(err))
	assert.Equal(t, "Internal server error", apperr.Message(err))
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	err := apperr.WithMessage(http.StatusTooManyRequests, "Item run out")
	assert.Equal(t, http.StatusTooManyRequests, apperr.StatusCode(err))
	assert.Equal(t, "Item run out", apperr.Message(err))
	assert.EqualError(t, err, "Item run out")
}
