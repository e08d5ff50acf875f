package dto

import "github.com/freshfest/gateway-api/internal/proto"

// VerifyTicket is the request body for exchanging an SSO ticket for
// a credential pair.
type VerifyTicket struct {
	Ticket string `json:"ticket" validate:"required"`
}

// RedeemNewToken is the request body for refreshing an expired access token.
type RedeemNewToken struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// VerifyGoogleLogin is the request body for completing the Google OAuth
// login flow with the authorization code.
type VerifyGoogleLogin struct {
	Code string `json:"code" validate:"required"`
}

// Credential is the token pair returned by every successful login or
// refresh.
type Credential struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int32  `json:"expires_in"`
}

// TokenPayload is the resolved identity behind a validated access token.
type TokenPayload struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// GoogleLoginURL carries the URL a client should open to start the Google
// OAuth flow.
type GoogleLoginURL struct {
	URL string `json:"url"`
}

// CredentialFromProto maps a backend credential onto the wire shape.
func CredentialFromProto(c *proto.Credential) Credential {
	if c == nil {
		return Credential{}
	}
	return Credential{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ExpiresIn:    c.ExpiresIn,
	}
}
