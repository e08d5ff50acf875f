// Package staff wraps the staff-facing check-in operations: the staff
// role check and door check-in for the freshy-night event.
package staff

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/proto"
)

const freshyNightEventID = "freshy_night"

// Service exposes the staff domain operations.
type Service struct {
	client proto.CheckinStaffServiceClient
}

// NewService creates a staff service on the given backend client.
func NewService(client proto.CheckinStaffServiceClient) *Service {
	return &Service{client: client}
}

// IsStaff reports whether the given user holds a staff record.
func (s *Service) IsStaff(ctx context.Context, staffID string) (bool, error) {
	resp, err := s.client.IsStaff(ctx, &proto.IsStaffRequest{StaffId: staffID})
	if err != nil {
		return false, apperr.FromRPC(err)
	}
	return resp.GetIsStaff(), nil
}

// CheckinFreshyNight admits a user at the freshy-night door on the staff
// member's authority. The backend verifies the staff id.
func (s *Service) CheckinFreshyNight(ctx context.Context, staffID, userID string) (bool, error) {
	resp, err := s.client.AddEventToUser(ctx, &proto.AddEventToUserRequest{
		StaffUserId: staffID,
		UserId:      userID,
		EventId:     freshyNightEventID,
	})
	if err != nil {
		return false, apperr.FromRPC(err)
	}
	return resp.GetSuccess(), nil
}
