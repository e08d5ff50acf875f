// Package user wraps the user profile operations of the backend service.
package user

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Service exposes the user domain operations.
type Service struct {
	client proto.UserServiceClient
}

// NewService creates a user service on the given backend client.
func NewService(client proto.UserServiceClient) *Service {
	return &Service{client: client}
}

// FindOne fetches a user's full profile by id.
func (s *Service) FindOne(ctx context.Context, userID string) (dto.User, error) {
	resp, err := s.client.FindOne(ctx, &proto.FindOneUserRequest{Id: userID})
	if err != nil {
		return dto.User{}, apperr.FromRPC(err)
	}
	if resp.GetUser() == nil {
		return dto.User{}, apperr.ErrInternalServer
	}
	return dto.UserFromProto(resp.GetUser()), nil
}

// Update applies a profile update on behalf of userID. The body's identity
// is ignored; only the resolved credential decides whose profile changes.
func (s *Service) Update(ctx context.Context, userID string, body dto.UpdateUser) (dto.User, error) {
	resp, err := s.client.Update(ctx, body.ToProto(userID))
	if err != nil {
		return dto.User{}, apperr.FromRPC(err)
	}
	if resp.GetUser() == nil {
		return dto.User{}, apperr.ErrInternalServer
	}
	return dto.UserFromProto(resp.GetUser()), nil
}
