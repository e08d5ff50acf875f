// Messages for the check-in backend (checkin.user.UserService,
// checkin.staff.StaffService and checkin.event.EventService).

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type Event struct {
	EventId        string `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	EventName      string `protobuf:"bytes,2,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
	AdditionalInfo string `protobuf:"bytes,3,opt,name=additional_info,json=additionalInfo,proto3" json:"additional_info,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return proto.CompactTextString(m) }
func (*Event) ProtoMessage()    {}

type UserEvent struct {
	Event   *Event `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	IsTaken bool   `protobuf:"varint,2,opt,name=is_taken,json=isTaken,proto3" json:"is_taken,omitempty"`
	TakenAt int64  `protobuf:"varint,3,opt,name=taken_at,json=takenAt,proto3" json:"taken_at,omitempty"`
}

func (m *UserEvent) Reset()         { *m = UserEvent{} }
func (m *UserEvent) String() string { return proto.CompactTextString(m) }
func (*UserEvent) ProtoMessage()    {}

func (m *UserEvent) GetEvent() *Event {
	if m != nil {
		return m.Event
	}
	return nil
}

func (m *UserEvent) GetIsTaken() bool {
	if m != nil {
		return m.IsTaken
	}
	return false
}

type GetUserEventByEventIdRequest struct {
	UserId  string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	EventId string `protobuf:"bytes,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
}

func (m *GetUserEventByEventIdRequest) Reset()         { *m = GetUserEventByEventIdRequest{} }
func (m *GetUserEventByEventIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetUserEventByEventIdRequest) ProtoMessage()    {}

type GetUserEventByEventIdResponse struct {
	UserEvent *UserEvent `protobuf:"bytes,1,opt,name=user_event,json=userEvent,proto3" json:"user_event,omitempty"`
}

func (m *GetUserEventByEventIdResponse) Reset()         { *m = GetUserEventByEventIdResponse{} }
func (m *GetUserEventByEventIdResponse) String() string { return proto.CompactTextString(m) }
func (*GetUserEventByEventIdResponse) ProtoMessage()    {}

func (m *GetUserEventByEventIdResponse) GetUserEvent() *UserEvent {
	if m != nil {
		return m.UserEvent
	}
	return nil
}

type AddEventRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Token  string `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *AddEventRequest) Reset()         { *m = AddEventRequest{} }
func (m *AddEventRequest) String() string { return proto.CompactTextString(m) }
func (*AddEventRequest) ProtoMessage()    {}

type AddEventResponse struct {
	Event *Event `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
}

func (m *AddEventResponse) Reset()         { *m = AddEventResponse{} }
func (m *AddEventResponse) String() string { return proto.CompactTextString(m) }
func (*AddEventResponse) ProtoMessage()    {}

func (m *AddEventResponse) GetEvent() *Event {
	if m != nil {
		return m.Event
	}
	return nil
}

type GetAllUserEventsByNamespaceIdRequest struct {
	UserId      string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NamespaceId string `protobuf:"bytes,2,opt,name=namespace_id,json=namespaceId,proto3" json:"namespace_id,omitempty"`
}

func (m *GetAllUserEventsByNamespaceIdRequest) Reset() {
	*m = GetAllUserEventsByNamespaceIdRequest{}
}
func (m *GetAllUserEventsByNamespaceIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetAllUserEventsByNamespaceIdRequest) ProtoMessage()    {}

type GetAllUserEventsByNamespaceIdResponse struct {
	Event []*UserEvent `protobuf:"bytes,1,rep,name=event,proto3" json:"event,omitempty"`
}

func (m *GetAllUserEventsByNamespaceIdResponse) Reset() {
	*m = GetAllUserEventsByNamespaceIdResponse{}
}
func (m *GetAllUserEventsByNamespaceIdResponse) String() string { return proto.CompactTextString(m) }
func (*GetAllUserEventsByNamespaceIdResponse) ProtoMessage()    {}

func (m *GetAllUserEventsByNamespaceIdResponse) GetEvent() []*UserEvent {
	if m != nil {
		return m.Event
	}
	return nil
}

type GetEventsByNamespaceIdRequest struct {
	NamespaceId string `protobuf:"bytes,1,opt,name=namespace_id,json=namespaceId,proto3" json:"namespace_id,omitempty"`
}

func (m *GetEventsByNamespaceIdRequest) Reset()         { *m = GetEventsByNamespaceIdRequest{} }
func (m *GetEventsByNamespaceIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetEventsByNamespaceIdRequest) ProtoMessage()    {}

type GetEventsByNamespaceIdResponse struct {
	Events []*Event `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
}

func (m *GetEventsByNamespaceIdResponse) Reset()         { *m = GetEventsByNamespaceIdResponse{} }
func (m *GetEventsByNamespaceIdResponse) String() string { return proto.CompactTextString(m) }
func (*GetEventsByNamespaceIdResponse) ProtoMessage()    {}

func (m *GetEventsByNamespaceIdResponse) GetEvents() []*Event {
	if m != nil {
		return m.Events
	}
	return nil
}

type IsStaffRequest struct {
	StaffId string `protobuf:"bytes,1,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
}

func (m *IsStaffRequest) Reset()         { *m = IsStaffRequest{} }
func (m *IsStaffRequest) String() string { return proto.CompactTextString(m) }
func (*IsStaffRequest) ProtoMessage()    {}

type IsStaffResponse struct {
	IsStaff bool `protobuf:"varint,1,opt,name=is_staff,json=isStaff,proto3" json:"is_staff,omitempty"`
}

func (m *IsStaffResponse) Reset()         { *m = IsStaffResponse{} }
func (m *IsStaffResponse) String() string { return proto.CompactTextString(m) }
func (*IsStaffResponse) ProtoMessage()    {}

func (m *IsStaffResponse) GetIsStaff() bool {
	if m != nil {
		return m.IsStaff
	}
	return false
}

type AddEventToUserRequest struct {
	StaffUserId string `protobuf:"bytes,1,opt,name=staff_user_id,json=staffUserId,proto3" json:"staff_user_id,omitempty"`
	UserId      string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	EventId     string `protobuf:"bytes,3,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
}

func (m *AddEventToUserRequest) Reset()         { *m = AddEventToUserRequest{} }
func (m *AddEventToUserRequest) String() string { return proto.CompactTextString(m) }
func (*AddEventToUserRequest) ProtoMessage()    {}

type AddEventToUserResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (m *AddEventToUserResponse) Reset()         { *m = AddEventToUserResponse{} }
func (m *AddEventToUserResponse) String() string { return proto.CompactTextString(m) }
func (*AddEventToUserResponse) ProtoMessage()    {}

func (m *AddEventToUserResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}
