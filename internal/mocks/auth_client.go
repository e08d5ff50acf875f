package mocks

import (
	"context"

	"google.golang.org/grpc"

	"github.com/freshfest/gateway-api/internal/proto"
)

// AuthClient is a mock implementation of proto.AuthServiceClient.
type AuthClient struct {
	VerifyTicketFunc      func(ctx context.Context, in *proto.VerifyTicketRequest, opts ...grpc.CallOption) (*proto.VerifyTicketResponse, error)
	ValidateFunc          func(ctx context.Context, in *proto.ValidateRequest, opts ...grpc.CallOption) (*proto.ValidateResponse, error)
	RefreshTokenFunc      func(ctx context.Context, in *proto.RefreshTokenRequest, opts ...grpc.CallOption) (*proto.RefreshTokenResponse, error)
	GetGoogleLoginUrlFunc func(ctx context.Context, in *proto.GetGoogleLoginUrlRequest, opts ...grpc.CallOption) (*proto.GetGoogleLoginUrlResponse, error)
	VerifyGoogleLoginFunc func(ctx context.Context, in *proto.VerifyGoogleLoginRequest, opts ...grpc.CallOption) (*proto.VerifyGoogleLoginResponse, error)
}

func (m *AuthClient) VerifyTicket(ctx context.Context, in *proto.VerifyTicketRequest, opts ...grpc.CallOption) (*proto.VerifyTicketResponse, error) {
	if m.VerifyTicketFunc != nil {
		return m.VerifyTicketFunc(ctx, in, opts...)
	}
	return &proto.VerifyTicketResponse{}, nil
}

func (m *AuthClient) Validate(ctx context.Context, in *proto.ValidateRequest, opts ...grpc.CallOption) (*proto.ValidateResponse, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, in, opts...)
	}
	return &proto.ValidateResponse{}, nil
}

func (m *AuthClient) RefreshToken(ctx context.Context, in *proto.RefreshTokenRequest, opts ...grpc.CallOption) (*proto.RefreshTokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, in, opts...)
	}
	return &proto.RefreshTokenResponse{}, nil
}

func (m *AuthClient) GetGoogleLoginUrl(ctx context.Context, in *proto.GetGoogleLoginUrlRequest, opts ...grpc.CallOption) (*proto.GetGoogleLoginUrlResponse, error) {
	if m.GetGoogleLoginUrlFunc != nil {
		return m.GetGoogleLoginUrlFunc(ctx, in, opts...)
	}
	return &proto.GetGoogleLoginUrlResponse{}, nil
}

func (m *AuthClient) VerifyGoogleLogin(ctx context.Context, in *proto.VerifyGoogleLoginRequest, opts ...grpc.CallOption) (*proto.VerifyGoogleLoginResponse, error) {
	if m.VerifyGoogleLoginFunc != nil {
		return m.VerifyGoogleLoginFunc(ctx, in, opts...)
	}
	return &proto.VerifyGoogleLoginResponse{}, nil
}
