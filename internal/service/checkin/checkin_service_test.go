package checkin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/config"
	"github.com/freshfest/gateway-api/internal/mocks"
	"github.com/freshfest/gateway-api/internal/proto"
	"github.com/freshfest/gateway-api/internal/service/checkin"
)

func eventCfg(day int) config.EventConfig {
	return config.EventConfig{CheckinDay: day, EstampRequiredCount: 5}
}

func TestHasCheckin_UsesConfiguredDayKey(t *testing.T) {
	t.Parallel()

	var askedFor string
	client := &mocks.CheckinUserClient{
		GetUserEventByEventIdFunc: func(_ context.Context, in *proto.GetUserEventByEventIdRequest, _ ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error) {
			askedFor = in.EventId
			return &proto.GetUserEventByEventIdResponse{UserEvent: &proto.UserEvent{IsTaken: true}}, nil
		},
	}

	svc := checkin.NewService(client, eventCfg(3))
	got, err := svc.HasCheckin(context.Background(), "u-1")

	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "checkin-day-3", askedFor)
}

func TestHasCheckin_NotFoundMeansFalse(t *testing.T) {
	t.Parallel()

	client := &mocks.CheckinUserClient{
		GetUserEventByEventIdFunc: func(_ context.Context, _ *proto.GetUserEventByEventIdRequest, _ ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error) {
			return nil, status.Error(codes.NotFound, "no record")
		},
	}

	svc := checkin.NewService(client, eventCfg(1))
	got, err := svc.HasCheckin(context.Background(), "u-1")

	require.NoError(t, err, "absence is a normal state, not an error")
	assert.False(t, got)
}

func TestHasCheckin_OtherErrorsPropagate(t *testing.T) {
	t.Parallel()

	client := &mocks.CheckinUserClient{
		GetUserEventByEventIdFunc: func(_ context.Context, _ *proto.GetUserEventByEventIdRequest, _ ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error) {
			return nil, status.Error(codes.Unavailable, "down")
		},
	}

	svc := checkin.NewService(client, eventCfg(1))
	_, err := svc.HasCheckin(context.Background(), "u-1")

	assert.ErrorIs(t, err, apperr.ErrServiceDown)
}

func TestCheckin(t *testing.T) {
	t.Parallel()

	var sent *proto.AddEventRequest
	client := &mocks.CheckinUserClient{
		AddEventFunc: func(_ context.Context, in *proto.AddEventRequest, _ ...grpc.CallOption) (*proto.AddEventResponse, error) {
			sent = in
			return &proto.AddEventResponse{Event: &proto.Event{EventId: in.Token}}, nil
		},
	}

	svc := checkin.NewService(client, eventCfg(2))
	ok, err := svc.Checkin(context.Background(), "u-1")

	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, sent)
	assert.Equal(t, "u-1", sent.UserId)
	assert.Equal(t, "checkin-day-2", sent.Token)
}

func TestCheckin_SecondAttemptDuplicated(t *testing.T) {
	t.Parallel()

	client := &mocks.CheckinUserClient{
		AddEventFunc: func(_ context.Context, _ *proto.AddEventRequest, _ ...grpc.CallOption) (*proto.AddEventResponse, error) {
			return nil, status.Error(codes.AlreadyExists, "already checked in")
		},
	}

	svc := checkin.NewService(client, eventCfg(1))
	_, err := svc.Checkin(context.Background(), "u-1")

	assert.ErrorIs(t, err, apperr.ErrDuplicated)
}

func TestIsFreshyNightTicketRedeemed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		reply   *proto.GetUserEventByEventIdResponse
		replyEr error
		want    bool
		wantErr error
	}{
		{
			name:  "record exists",
			reply: &proto.GetUserEventByEventIdResponse{UserEvent: &proto.UserEvent{IsTaken: true}},
			want:  true,
		},
		{
			name:  "empty reply",
			reply: &proto.GetUserEventByEventIdResponse{},
			want:  false,
		},
		{
			name:    "not found means false",
			replyEr: status.Error(codes.NotFound, "no record"),
			want:    false,
		},
		{
			name:    "internal error propagates",
			replyEr: status.Error(codes.Internal, "boom"),
			wantErr: apperr.ErrInternalServer,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var askedFor string
			client := &mocks.CheckinUserClient{
				GetUserEventByEventIdFunc: func(_ context.Context, in *proto.GetUserEventByEventIdRequest, _ ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error) {
					askedFor = in.EventId
					return tc.reply, tc.replyEr
				},
			}

			svc := checkin.NewService(client, eventCfg(1))
			got, err := svc.IsFreshyNightTicketRedeemed(context.Background(), "u-1")

			assert.Equal(t, "freshy_night", askedFor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
