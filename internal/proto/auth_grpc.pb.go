// Client stub for auth.AuthService, in the shape protoc-gen-go-grpc emits.

package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// AuthServiceClient is the client API for AuthService service.
type AuthServiceClient interface {
	VerifyTicket(ctx context.Context, in *VerifyTicketRequest, opts ...grpc.CallOption) (*VerifyTicketResponse, error)
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	GetGoogleLoginUrl(ctx context.Context, in *GetGoogleLoginUrlRequest, opts ...grpc.CallOption) (*GetGoogleLoginUrlResponse, error)
	VerifyGoogleLogin(ctx context.Context, in *VerifyGoogleLoginRequest, opts ...grpc.CallOption) (*VerifyGoogleLoginResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) VerifyTicket(ctx context.Context, in *VerifyTicketRequest, opts ...grpc.CallOption) (*VerifyTicketResponse, error) {
	out := new(VerifyTicketResponse)
	err := c.cc.Invoke(ctx, "/auth.AuthService/VerifyTicket", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	out := new(ValidateResponse)
	err := c.cc.Invoke(ctx, "/auth.AuthService/Validate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	out := new(RefreshTokenResponse)
	err := c.cc.Invoke(ctx, "/auth.AuthService/RefreshToken", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) GetGoogleLoginUrl(ctx context.Context, in *GetGoogleLoginUrlRequest, opts ...grpc.CallOption) (*GetGoogleLoginUrlResponse, error) {
	out := new(GetGoogleLoginUrlResponse)
	err := c.cc.Invoke(ctx, "/auth.AuthService/GetGoogleLoginUrl", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) VerifyGoogleLogin(ctx context.Context, in *VerifyGoogleLoginRequest, opts ...grpc.CallOption) (*VerifyGoogleLoginResponse, error) {
	out := new(VerifyGoogleLoginResponse)
	err := c.cc.Invoke(ctx, "/auth.AuthService/VerifyGoogleLogin", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
