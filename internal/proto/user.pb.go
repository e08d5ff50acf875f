// Messages for the backend user domain (user.UserService).

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type User struct {
	Id              string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title           string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Firstname       string `protobuf:"bytes,3,opt,name=firstname,proto3" json:"firstname,omitempty"`
	Lastname        string `protobuf:"bytes,4,opt,name=lastname,proto3" json:"lastname,omitempty"`
	Nickname        string `protobuf:"bytes,5,opt,name=nickname,proto3" json:"nickname,omitempty"`
	StudentId       string `protobuf:"bytes,6,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	Faculty         string `protobuf:"bytes,7,opt,name=faculty,proto3" json:"faculty,omitempty"`
	Year            string `protobuf:"bytes,8,opt,name=year,proto3" json:"year,omitempty"`
	Phone           string `protobuf:"bytes,9,opt,name=phone,proto3" json:"phone,omitempty"`
	LineId          string `protobuf:"bytes,10,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	Email           string `protobuf:"bytes,11,opt,name=email,proto3" json:"email,omitempty"`
	AllergyFood     string `protobuf:"bytes,12,opt,name=allergy_food,json=allergyFood,proto3" json:"allergy_food,omitempty"`
	FoodRestriction string `protobuf:"bytes,13,opt,name=food_restriction,json=foodRestriction,proto3" json:"food_restriction,omitempty"`
	AllergyMedicine string `protobuf:"bytes,14,opt,name=allergy_medicine,json=allergyMedicine,proto3" json:"allergy_medicine,omitempty"`
	Disease         string `protobuf:"bytes,15,opt,name=disease,proto3" json:"disease,omitempty"`
	EmerPhone       string `protobuf:"bytes,16,opt,name=emer_phone,json=emerPhone,proto3" json:"emer_phone,omitempty"`
	EmerRelation    string `protobuf:"bytes,17,opt,name=emer_relation,json=emerRelation,proto3" json:"emer_relation,omitempty"`
	WantBottle      bool   `protobuf:"varint,18,opt,name=want_bottle,json=wantBottle,proto3" json:"want_bottle,omitempty"`
	ImageUrl        string `protobuf:"bytes,19,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	CanSelectBaan   bool   `protobuf:"varint,20,opt,name=can_select_baan,json=canSelectBaan,proto3" json:"can_select_baan,omitempty"`
	IsVerify        bool   `protobuf:"varint,21,opt,name=is_verify,json=isVerify,proto3" json:"is_verify,omitempty"`
	BaanId          string `protobuf:"bytes,22,opt,name=baan_id,json=baanId,proto3" json:"baan_id,omitempty"`
	IsGotTicket     bool   `protobuf:"varint,23,opt,name=is_got_ticket,json=isGotTicket,proto3" json:"is_got_ticket,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return proto.CompactTextString(m) }
func (*User) ProtoMessage()    {}

func (m *User) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *User) GetBaanId() string {
	if m != nil {
		return m.BaanId
	}
	return ""
}

type FindOneUserRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *FindOneUserRequest) Reset()         { *m = FindOneUserRequest{} }
func (m *FindOneUserRequest) String() string { return proto.CompactTextString(m) }
func (*FindOneUserRequest) ProtoMessage()    {}

func (m *FindOneUserRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type FindOneUserResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *FindOneUserResponse) Reset()         { *m = FindOneUserResponse{} }
func (m *FindOneUserResponse) String() string { return proto.CompactTextString(m) }
func (*FindOneUserResponse) ProtoMessage()    {}

func (m *FindOneUserResponse) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

type UpdateUserRequest struct {
	Id              string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title           string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Firstname       string `protobuf:"bytes,3,opt,name=firstname,proto3" json:"firstname,omitempty"`
	Lastname        string `protobuf:"bytes,4,opt,name=lastname,proto3" json:"lastname,omitempty"`
	Nickname        string `protobuf:"bytes,5,opt,name=nickname,proto3" json:"nickname,omitempty"`
	Phone           string `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	LineId          string `protobuf:"bytes,7,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	Email           string `protobuf:"bytes,8,opt,name=email,proto3" json:"email,omitempty"`
	AllergyFood     string `protobuf:"bytes,9,opt,name=allergy_food,json=allergyFood,proto3" json:"allergy_food,omitempty"`
	FoodRestriction string `protobuf:"bytes,10,opt,name=food_restriction,json=foodRestriction,proto3" json:"food_restriction,omitempty"`
	AllergyMedicine string `protobuf:"bytes,11,opt,name=allergy_medicine,json=allergyMedicine,proto3" json:"allergy_medicine,omitempty"`
	Disease         string `protobuf:"bytes,12,opt,name=disease,proto3" json:"disease,omitempty"`
	EmerPhone       string `protobuf:"bytes,13,opt,name=emer_phone,json=emerPhone,proto3" json:"emer_phone,omitempty"`
	EmerRelation    string `protobuf:"bytes,14,opt,name=emer_relation,json=emerRelation,proto3" json:"emer_relation,omitempty"`
	WantBottle      bool   `protobuf:"varint,15,opt,name=want_bottle,json=wantBottle,proto3" json:"want_bottle,omitempty"`
}

func (m *UpdateUserRequest) Reset()         { *m = UpdateUserRequest{} }
func (m *UpdateUserRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateUserRequest) ProtoMessage()    {}

type UpdateUserResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *UpdateUserResponse) Reset()         { *m = UpdateUserResponse{} }
func (m *UpdateUserResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateUserResponse) ProtoMessage()    {}

func (m *UpdateUserResponse) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}
