// Messages for the auth backend (auth.AuthService).

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type Credential struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	ExpiresIn    int32  `protobuf:"varint,3,opt,name=expires_in,json=expiresIn,proto3" json:"expires_in,omitempty"`
}

func (m *Credential) Reset()         { *m = Credential{} }
func (m *Credential) String() string { return proto.CompactTextString(m) }
func (*Credential) ProtoMessage()    {}

func (m *Credential) GetAccessToken() string {
	if m != nil {
		return m.AccessToken
	}
	return ""
}

func (m *Credential) GetRefreshToken() string {
	if m != nil {
		return m.RefreshToken
	}
	return ""
}

func (m *Credential) GetExpiresIn() int32 {
	if m != nil {
		return m.ExpiresIn
	}
	return 0
}

type VerifyTicketRequest struct {
	Ticket string `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
}

func (m *VerifyTicketRequest) Reset()         { *m = VerifyTicketRequest{} }
func (m *VerifyTicketRequest) String() string { return proto.CompactTextString(m) }
func (*VerifyTicketRequest) ProtoMessage()    {}

func (m *VerifyTicketRequest) GetTicket() string {
	if m != nil {
		return m.Ticket
	}
	return ""
}

type VerifyTicketResponse struct {
	Credential *Credential `protobuf:"bytes,1,opt,name=credential,proto3" json:"credential,omitempty"`
}

func (m *VerifyTicketResponse) Reset()         { *m = VerifyTicketResponse{} }
func (m *VerifyTicketResponse) String() string { return proto.CompactTextString(m) }
func (*VerifyTicketResponse) ProtoMessage()    {}

func (m *VerifyTicketResponse) GetCredential() *Credential {
	if m != nil {
		return m.Credential
	}
	return nil
}

type ValidateRequest struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *ValidateRequest) Reset()         { *m = ValidateRequest{} }
func (m *ValidateRequest) String() string { return proto.CompactTextString(m) }
func (*ValidateRequest) ProtoMessage()    {}

func (m *ValidateRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type ValidateResponse struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Role   string `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *ValidateResponse) Reset()         { *m = ValidateResponse{} }
func (m *ValidateResponse) String() string { return proto.CompactTextString(m) }
func (*ValidateResponse) ProtoMessage()    {}

func (m *ValidateResponse) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *ValidateResponse) GetRole() string {
	if m != nil {
		return m.Role
	}
	return ""
}

type RefreshTokenRequest struct {
	RefreshToken string `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
}

func (m *RefreshTokenRequest) Reset()         { *m = RefreshTokenRequest{} }
func (m *RefreshTokenRequest) String() string { return proto.CompactTextString(m) }
func (*RefreshTokenRequest) ProtoMessage()    {}

func (m *RefreshTokenRequest) GetRefreshToken() string {
	if m != nil {
		return m.RefreshToken
	}
	return ""
}

type RefreshTokenResponse struct {
	Credential *Credential `protobuf:"bytes,1,opt,name=credential,proto3" json:"credential,omitempty"`
}

func (m *RefreshTokenResponse) Reset()         { *m = RefreshTokenResponse{} }
func (m *RefreshTokenResponse) String() string { return proto.CompactTextString(m) }
func (*RefreshTokenResponse) ProtoMessage()    {}

func (m *RefreshTokenResponse) GetCredential() *Credential {
	if m != nil {
		return m.Credential
	}
	return nil
}

type GetGoogleLoginUrlRequest struct{}

func (m *GetGoogleLoginUrlRequest) Reset()         { *m = GetGoogleLoginUrlRequest{} }
func (m *GetGoogleLoginUrlRequest) String() string { return proto.CompactTextString(m) }
func (*GetGoogleLoginUrlRequest) ProtoMessage()    {}

type GetGoogleLoginUrlResponse struct {
	Url string `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
}

func (m *GetGoogleLoginUrlResponse) Reset()         { *m = GetGoogleLoginUrlResponse{} }
func (m *GetGoogleLoginUrlResponse) String() string { return proto.CompactTextString(m) }
func (*GetGoogleLoginUrlResponse) ProtoMessage()    {}

func (m *GetGoogleLoginUrlResponse) GetUrl() string {
	if m != nil {
		return m.Url
	}
	return ""
}

type VerifyGoogleLoginRequest struct {
	Code string `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
}

func (m *VerifyGoogleLoginRequest) Reset()         { *m = VerifyGoogleLoginRequest{} }
func (m *VerifyGoogleLoginRequest) String() string { return proto.CompactTextString(m) }
func (*VerifyGoogleLoginRequest) ProtoMessage()    {}

func (m *VerifyGoogleLoginRequest) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

type VerifyGoogleLoginResponse struct {
	Credential *Credential `protobuf:"bytes,1,opt,name=credential,proto3" json:"credential,omitempty"`
}

func (m *VerifyGoogleLoginResponse) Reset()         { *m = VerifyGoogleLoginResponse{} }
func (m *VerifyGoogleLoginResponse) String() string { return proto.CompactTextString(m) }
func (*VerifyGoogleLoginResponse) ProtoMessage()    {}

func (m *VerifyGoogleLoginResponse) GetCredential() *Credential {
	if m != nil {
		return m.Credential
	}
	return nil
}
