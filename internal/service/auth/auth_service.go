// Package auth wraps the authentication backend: ticket verification,
// token validation, refresh, and the Google OAuth login flow.
package auth

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Service exposes the auth domain operations.
type Service struct {
	client proto.AuthServiceClient
}

// NewService creates an auth service on the given backend client.
func NewService(client proto.AuthServiceClient) *Service {
	return &Service{client: client}
}

// VerifyTicket exchanges an SSO ticket for a credential pair.
func (s *Service) VerifyTicket(ctx context.Context, ticket string) (dto.Credential, error) {
	resp, err := s.client.VerifyTicket(ctx, &proto.VerifyTicketRequest{Ticket: ticket})
	if err != nil {
		return dto.Credential{}, apperr.FromRPC(err)
	}
	if resp.GetCredential() == nil {
		// A success reply without a credential means the backend broke its
		// own contract.
		return dto.Credential{}, apperr.ErrInternalServer
	}
	return dto.CredentialFromProto(resp.GetCredential()), nil
}

// Validate resolves an access token into the identity behind it.
func (s *Service) Validate(ctx context.Context, token string) (dto.TokenPayload, error) {
	resp, err := s.client.Validate(ctx, &proto.ValidateRequest{Token: token})
	if err != nil {
		return dto.TokenPayload{}, apperr.FromRPC(err)
	}
	return dto.TokenPayload{UserID: resp.GetUserId(), Role: resp.GetRole()}, nil
}

// RefreshToken trades a refresh token for a fresh credential pair.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (dto.Credential, error) {
	resp, err := s.client.RefreshToken(ctx, &proto.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return dto.Credential{}, apperr.FromRPC(err)
	}
	if resp.GetCredential() == nil {
		return dto.Credential{}, apperr.ErrInternalServer
	}
	return dto.CredentialFromProto(resp.GetCredential()), nil
}

// GetGoogleLoginURL returns the URL that starts the Google OAuth flow.
func (s *Service) GetGoogleLoginURL(ctx context.Context) (string, error) {
	resp, err := s.client.GetGoogleLoginUrl(ctx, &proto.GetGoogleLoginUrlRequest{})
	if err != nil {
		return "", apperr.FromRPC(err)
	}
	return resp.GetUrl(), nil
}

// VerifyGoogleLogin completes the Google OAuth flow with the authorization
// code and returns a credential pair.
func (s *Service) VerifyGoogleLogin(ctx context.Context, code string) (dto.Credential, error) {
	resp, err := s.client.VerifyGoogleLogin(ctx, &proto.VerifyGoogleLoginRequest{Code: code})
	if err != nil {
		return dto.Credential{}, apperr.FromRPC(err)
	}
	if resp.GetCredential() == nil {
		return dto.Credential{}, apperr.ErrInternalServer
	}
	return dto.CredentialFromProto(resp.GetCredential()), nil
}
