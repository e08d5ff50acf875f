package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/freshfest/gateway-api/internal/api"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/mocks"
	"github.com/freshfest/gateway-api/internal/proto"
	"github.com/freshfest/gateway-api/internal/service/group"
)

func newGroupHandler(client *mocks.GroupClient) *api.GroupHandler {
	return api.NewGroupHandler(group.NewService(client))
}

func testProtoGroup() *proto.Group {
	return &proto.Group{
		Id:       "g1",
		LeaderId: testUserID,
		Token:    "invite-token",
		Members: []*proto.UserInfo{
			{Id: testUserID, Firstname: "Leader"},
			{Id: "user-2", Firstname: "Member"},
		},
	}
}

func TestGroupFindOne(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		FindOneFunc: func(ctx context.Context, in *proto.FindOneGroupRequest, opts ...grpc.CallOption) (*proto.FindOneGroupResponse, error) {
			assert.Equal(t, testUserID, in.UserId)
			return &proto.FindOneGroupResponse{Group: testProtoGroup()}, nil
		},
	})

	r := authedRequest(t, http.MethodGet, "/group", nil)
	w := httptest.NewRecorder()
	handler.FindOne(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var g dto.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, testUserID, g.LeaderID)
	require.Len(t, g.Members, 2)
	assert.Equal(t, "Leader", g.Members[0].Firstname)
}

func TestGroupFindByTokenIsPublic(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		FindByTokenFunc: func(ctx context.Context, in *proto.FindByTokenGroupRequest, opts ...grpc.CallOption) (*proto.FindByTokenGroupResponse, error) {
			assert.Equal(t, "invite-token", in.Token)
			return &proto.FindByTokenGroupResponse{
				Id:     "g1",
				Token:  "invite-token",
				Leader: &proto.UserInfo{Id: testUserID, Firstname: "Leader"},
			}, nil
		},
	})

	// No credential on the request: the preview endpoint is public.
	r := httptest.NewRequest(http.MethodGet, "/group/invite-token", nil)
	w := route(t, http.MethodGet, "/group/{token}", handler.FindByToken, r)

	require.Equal(t, http.StatusOK, w.Code)
	var g dto.GroupOverview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, "Leader", g.Leader.Firstname)
}

func TestGroupJoin(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		JoinFunc: func(ctx context.Context, in *proto.JoinGroupRequest, opts ...grpc.CallOption) (*proto.JoinGroupResponse, error) {
			assert.Equal(t, "invite-token", in.Token)
			assert.Equal(t, testUserID, in.UserId)
			return &proto.JoinGroupResponse{Group: testProtoGroup()}, nil
		},
	})

	r := authedRequest(t, http.MethodPost, "/group/invite-token", nil)
	w := route(t, http.MethodPost, "/group/{token}", handler.Join, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGroupDeleteMemberForbiddenForNonLeader(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		DeleteMemberFunc: func(ctx context.Context, in *proto.DeleteMemberGroupRequest, opts ...grpc.CallOption) (*proto.DeleteMemberGroupResponse, error) {
			return nil, status.Error(codes.PermissionDenied, "not the leader")
		},
	})

	r := authedRequest(t, http.MethodDelete, "/group/members/user-2", nil)
	w := route(t, http.MethodDelete, "/group/members/{member_id}", handler.DeleteMember, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestGroupLeave(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		LeaveFunc: func(ctx context.Context, in *proto.LeaveGroupRequest, opts ...grpc.CallOption) (*proto.LeaveGroupResponse, error) {
			assert.Equal(t, testUserID, in.UserId)
			return &proto.LeaveGroupResponse{Group: &proto.Group{
				Id:       "g-new",
				LeaderId: testUserID,
				Members:  []*proto.UserInfo{{Id: testUserID}},
			}}, nil
		},
	})

	r := authedRequest(t, http.MethodDelete, "/group/leave", nil)
	w := httptest.NewRecorder()
	handler.Leave(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var g dto.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, "g-new", g.ID)
	assert.Len(t, g.Members, 1)
}

func TestGroupSelectBaans(t *testing.T) {
	handler := newGroupHandler(&mocks.GroupClient{
		SelectBaanFunc: func(ctx context.Context, in *proto.SelectBaanRequest, opts ...grpc.CallOption) (*proto.SelectBaanResponse, error) {
			assert.Equal(t, []string{"b3", "b1", "b2"}, in.Baans)
			return &proto.SelectBaanResponse{Success: true}, nil
		},
	})

	r := authedRequest(t, http.MethodPut, "/group/select", strings.NewReader(`{"baans":["b3","b1","b2"]}`))
	w := httptest.NewRecorder()
	handler.SelectBaans(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestGroupSelectBaansRejectsEmptyList(t *testing.T) {
	called := false
	handler := newGroupHandler(&mocks.GroupClient{
		SelectBaanFunc: func(ctx context.Context, in *proto.SelectBaanRequest, opts ...grpc.CallOption) (*proto.SelectBaanResponse, error) {
			called = true
			return &proto.SelectBaanResponse{}, nil
		},
	})

	r := authedRequest(t, http.MethodPut, "/group/select", strings.NewReader(`{"baans":[]}`))
	w := httptest.NewRecorder()
	handler.SelectBaans(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}
