// Package group wraps the group membership operations of the backend
// service. Leadership rules (who may remove members, whether a leader may
// leave) are enforced by the backend; this service propagates its verdicts
// without re-deriving them.
package group

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Service exposes the group domain operations.
type Service struct {
	client proto.GroupServiceClient
}

// NewService creates a group service on the given backend client.
func NewService(client proto.GroupServiceClient) *Service {
	return &Service{client: client}
}

// FindOne fetches the group the given user belongs to.
func (s *Service) FindOne(ctx context.Context, userID string) (dto.Group, error) {
	resp, err := s.client.FindOne(ctx, &proto.FindOneGroupRequest{UserId: userID})
	if err != nil {
		return dto.Group{}, apperr.FromRPC(err)
	}
	if resp.GetGroup() == nil {
		return dto.Group{}, apperr.ErrNotFound
	}
	return dto.GroupFromProto(resp.GetGroup()), nil
}

// FindByToken resolves an invite token into a join-decision overview.
func (s *Service) FindByToken(ctx context.Context, token string) (dto.GroupOverview, error) {
	resp, err := s.client.FindByToken(ctx, &proto.FindByTokenGroupRequest{Token: token})
	if err != nil {
		return dto.GroupOverview{}, apperr.FromRPC(err)
	}
	return dto.GroupOverviewFromProto(resp), nil
}

// Join moves the user into the group behind the invite token.
func (s *Service) Join(ctx context.Context, token, userID string) (dto.Group, error) {
	resp, err := s.client.Join(ctx, &proto.JoinGroupRequest{Token: token, UserId: userID})
	if err != nil {
		return dto.Group{}, apperr.FromRPC(err)
	}
	if resp.GetGroup() == nil {
		return dto.Group{}, apperr.ErrNotFound
	}
	return dto.GroupFromProto(resp.GetGroup()), nil
}

// DeleteMember removes a member on the leader's behalf. The backend rejects
// callers who are not the leader with PermissionDenied.
func (s *Service) DeleteMember(ctx context.Context, leaderID, userID string) (dto.Group, error) {
	resp, err := s.client.DeleteMember(ctx, &proto.DeleteMemberGroupRequest{LeaderId: leaderID, UserId: userID})
	if err != nil {
		return dto.Group{}, apperr.FromRPC(err)
	}
	if resp.GetGroup() == nil {
		return dto.Group{}, apperr.ErrNotFound
	}
	return dto.GroupFromProto(resp.GetGroup()), nil
}

// Leave removes the caller from their group. The backend refuses a leader's
// leave attempt; that verdict surfaces as Forbidden.
func (s *Service) Leave(ctx context.Context, userID string) (dto.Group, error) {
	resp, err := s.client.Leave(ctx, &proto.LeaveGroupRequest{UserId: userID})
	if err != nil {
		return dto.Group{}, apperr.FromRPC(err)
	}
	if resp.GetGroup() == nil {
		return dto.Group{}, apperr.ErrNotFound
	}
	return dto.GroupFromProto(resp.GetGroup()), nil
}

// SelectBaans submits the group's ranked dormitory preferences.
func (s *Service) SelectBaans(ctx context.Context, userID string, baans []string) (bool, error) {
	resp, err := s.client.SelectBaan(ctx, &proto.SelectBaanRequest{UserId: userID, Baans: baans})
	if err != nil {
		return false, apperr.FromRPC(err)
	}
	return resp.GetSuccess(), nil
}
