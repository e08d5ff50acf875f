// Package checkin wraps the user-facing check-in service: daily check-in
// and the freshy-night ticket redemption check.
//
// Both existence checks treat a backend NotFound as an ordinary "no"
// answer. A student who never checked in has no user-event record at all,
// so absence is a normal state, not a failure.
package checkin

import (
	"context"
	"fmt"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/config"
	"github.com/freshfest/gateway-api/internal/proto"
)

const freshyNightEventID = "freshy_night"

// Service exposes the check-in domain operations.
type Service struct {
	client proto.CheckinUserServiceClient
	cfg    config.EventConfig
}

// NewService creates a check-in service on the given backend client.
func NewService(client proto.CheckinUserServiceClient, cfg config.EventConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// checkinEventID derives the event key for the configured festival day.
func (s *Service) checkinEventID() string {
	return fmt.Sprintf("checkin-day-%d", s.cfg.CheckinDay)
}

// HasCheckin reports whether the user already checked in today.
func (s *Service) HasCheckin(ctx context.Context, userID string) (bool, error) {
	resp, err := s.client.GetUserEventByEventId(ctx, &proto.GetUserEventByEventIdRequest{
		UserId:  userID,
		EventId: s.checkinEventID(),
	})
	if err != nil {
		if apperr.IsRPCNotFound(err) {
			return false, nil
		}
		return false, apperr.FromRPC(err)
	}
	return resp.GetUserEvent() != nil, nil
}

// Checkin records the user's check-in for today. The backend enforces
// at-most-once; a repeat attempt comes back as Duplicated.
func (s *Service) Checkin(ctx context.Context, userID string) (bool, error) {
	resp, err := s.client.AddEvent(ctx, &proto.AddEventRequest{
		UserId: userID,
		Token:  s.checkinEventID(),
	})
	if err != nil {
		return false, apperr.FromRPC(err)
	}
	return resp.GetEvent() != nil, nil
}

// IsFreshyNightTicketRedeemed reports whether the user's freshy-night
// ticket was already scanned at the door.
func (s *Service) IsFreshyNightTicketRedeemed(ctx context.Context, userID string) (bool, error) {
	resp, err := s.client.GetUserEventByEventId(ctx, &proto.GetUserEventByEventIdRequest{
		UserId:  userID,
		EventId: freshyNightEventID,
	})
	if err != nil {
		if apperr.IsRPCNotFound(err) {
			return false, nil
		}
		return false, apperr.FromRPC(err)
	}
	return resp.GetUserEvent() != nil, nil
}
