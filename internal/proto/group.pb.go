// Messages for the backend group domain (group.GroupService).

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type UserInfo struct {
	Id        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Firstname string `protobuf:"bytes,2,opt,name=firstname,proto3" json:"firstname,omitempty"`
	Lastname  string `protobuf:"bytes,3,opt,name=lastname,proto3" json:"lastname,omitempty"`
	ImageUrl  string `protobuf:"bytes,4,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
}

func (m *UserInfo) Reset()         { *m = UserInfo{} }
func (m *UserInfo) String() string { return proto.CompactTextString(m) }
func (*UserInfo) ProtoMessage()    {}

type BaanInfo struct {
	Id       string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NameTh   string `protobuf:"bytes,2,opt,name=name_th,json=nameTh,proto3" json:"name_th,omitempty"`
	NameEn   string `protobuf:"bytes,3,opt,name=name_en,json=nameEn,proto3" json:"name_en,omitempty"`
	ImageUrl string `protobuf:"bytes,4,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	Size     int32  `protobuf:"varint,5,opt,name=size,proto3" json:"size,omitempty"`
}

func (m *BaanInfo) Reset()         { *m = BaanInfo{} }
func (m *BaanInfo) String() string { return proto.CompactTextString(m) }
func (*BaanInfo) ProtoMessage()    {}

type Group struct {
	Id       string      `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	LeaderId string      `protobuf:"bytes,2,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	Token    string      `protobuf:"bytes,3,opt,name=token,proto3" json:"token,omitempty"`
	Members  []*UserInfo `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
	Baans    []*BaanInfo `protobuf:"bytes,5,rep,name=baans,proto3" json:"baans,omitempty"`
}

func (m *Group) Reset()         { *m = Group{} }
func (m *Group) String() string { return proto.CompactTextString(m) }
func (*Group) ProtoMessage()    {}

func (m *Group) GetLeaderId() string {
	if m != nil {
		return m.LeaderId
	}
	return ""
}

type FindOneGroupRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *FindOneGroupRequest) Reset()         { *m = FindOneGroupRequest{} }
func (m *FindOneGroupRequest) String() string { return proto.CompactTextString(m) }
func (*FindOneGroupRequest) ProtoMessage()    {}

type FindOneGroupResponse struct {
	Group *Group `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *FindOneGroupResponse) Reset()         { *m = FindOneGroupResponse{} }
func (m *FindOneGroupResponse) String() string { return proto.CompactTextString(m) }
func (*FindOneGroupResponse) ProtoMessage()    {}

func (m *FindOneGroupResponse) GetGroup() *Group {
	if m != nil {
		return m.Group
	}
	return nil
}

type FindByTokenGroupRequest struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *FindByTokenGroupRequest) Reset()         { *m = FindByTokenGroupRequest{} }
func (m *FindByTokenGroupRequest) String() string { return proto.CompactTextString(m) }
func (*FindByTokenGroupRequest) ProtoMessage()    {}

type FindByTokenGroupResponse struct {
	Id     string    `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Token  string    `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Leader *UserInfo `protobuf:"bytes,3,opt,name=leader,proto3" json:"leader,omitempty"`
}

func (m *FindByTokenGroupResponse) Reset()         { *m = FindByTokenGroupResponse{} }
func (m *FindByTokenGroupResponse) String() string { return proto.CompactTextString(m) }
func (*FindByTokenGroupResponse) ProtoMessage()    {}

func (m *FindByTokenGroupResponse) GetLeader() *UserInfo {
	if m != nil {
		return m.Leader
	}
	return nil
}

type JoinGroupRequest struct {
	Token  string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	UserId string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *JoinGroupRequest) Reset()         { *m = JoinGroupRequest{} }
func (m *JoinGroupRequest) String() string { return proto.CompactTextString(m) }
func (*JoinGroupRequest) ProtoMessage()    {}

type JoinGroupResponse struct {
	Group *Group `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *JoinGroupResponse) Reset()         { *m = JoinGroupResponse{} }
func (m *JoinGroupResponse) String() string { return proto.CompactTextString(m) }
func (*JoinGroupResponse) ProtoMessage()    {}

func (m *JoinGroupResponse) GetGroup() *Group {
	if m != nil {
		return m.Group
	}
	return nil
}

type DeleteMemberGroupRequest struct {
	LeaderId string `protobuf:"bytes,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	UserId   string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *DeleteMemberGroupRequest) Reset()         { *m = DeleteMemberGroupRequest{} }
func (m *DeleteMemberGroupRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteMemberGroupRequest) ProtoMessage()    {}

type DeleteMemberGroupResponse struct {
	Group *Group `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *DeleteMemberGroupResponse) Reset()         { *m = DeleteMemberGroupResponse{} }
func (m *DeleteMemberGroupResponse) String() string { return proto.CompactTextString(m) }
func (*DeleteMemberGroupResponse) ProtoMessage()    {}

func (m *DeleteMemberGroupResponse) GetGroup() *Group {
	if m != nil {
		return m.Group
	}
	return nil
}

type LeaveGroupRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *LeaveGroupRequest) Reset()         { *m = LeaveGroupRequest{} }
func (m *LeaveGroupRequest) String() string { return proto.CompactTextString(m) }
func (*LeaveGroupRequest) ProtoMessage()    {}

type LeaveGroupResponse struct {
	Group *Group `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *LeaveGroupResponse) Reset()         { *m = LeaveGroupResponse{} }
func (m *LeaveGroupResponse) String() string { return proto.CompactTextString(m) }
func (*LeaveGroupResponse) ProtoMessage()    {}

func (m *LeaveGroupResponse) GetGroup() *Group {
	if m != nil {
		return m.Group
	}
	return nil
}

type SelectBaanRequest struct {
	UserId string   `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Baans  []string `protobuf:"bytes,2,rep,name=baans,proto3" json:"baans,omitempty"`
}

func (m *SelectBaanRequest) Reset()         { *m = SelectBaanRequest{} }
func (m *SelectBaanRequest) String() string { return proto.CompactTextString(m) }
func (*SelectBaanRequest) ProtoMessage()    {}

type SelectBaanResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (m *SelectBaanResponse) Reset()         { *m = SelectBaanResponse{} }
func (m *SelectBaanResponse) String() string { return proto.CompactTextString(m) }
func (*SelectBaanResponse) ProtoMessage()    {}

func (m *SelectBaanResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}
