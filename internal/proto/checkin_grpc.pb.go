// Client stubs for the check-in backend services.

package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// CheckinUserServiceClient is the client API for checkin.user.UserService.
type CheckinUserServiceClient interface {
	GetUserEventByEventId(ctx context.Context, in *GetUserEventByEventIdRequest, opts ...grpc.CallOption) (*GetUserEventByEventIdResponse, error)
	AddEvent(ctx context.Context, in *AddEventRequest, opts ...grpc.CallOption) (*AddEventResponse, error)
	GetAllUserEventsByNamespaceId(ctx context.Context, in *GetAllUserEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*GetAllUserEventsByNamespaceIdResponse, error)
}

type checkinUserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckinUserServiceClient(cc grpc.ClientConnInterface) CheckinUserServiceClient {
	return &checkinUserServiceClient{cc}
}

func (c *checkinUserServiceClient) GetUserEventByEventId(ctx context.Context, in *GetUserEventByEventIdRequest, opts ...grpc.CallOption) (*GetUserEventByEventIdResponse, error) {
	out := new(GetUserEventByEventIdResponse)
	err := c.cc.Invoke(ctx, "/checkin.user.UserService/GetUserEventByEventId", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkinUserServiceClient) AddEvent(ctx context.Context, in *AddEventRequest, opts ...grpc.CallOption) (*AddEventResponse, error) {
	out := new(AddEventResponse)
	err := c.cc.Invoke(ctx, "/checkin.user.UserService/AddEvent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkinUserServiceClient) GetAllUserEventsByNamespaceId(ctx context.Context, in *GetAllUserEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*GetAllUserEventsByNamespaceIdResponse, error) {
	out := new(GetAllUserEventsByNamespaceIdResponse)
	err := c.cc.Invoke(ctx, "/checkin.user.UserService/GetAllUserEventsByNamespaceId", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckinStaffServiceClient is the client API for checkin.staff.StaffService.
type CheckinStaffServiceClient interface {
	IsStaff(ctx context.Context, in *IsStaffRequest, opts ...grpc.CallOption) (*IsStaffResponse, error)
	AddEventToUser(ctx context.Context, in *AddEventToUserRequest, opts ...grpc.CallOption) (*AddEventToUserResponse, error)
}

type checkinStaffServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckinStaffServiceClient(cc grpc.ClientConnInterface) CheckinStaffServiceClient {
	return &checkinStaffServiceClient{cc}
}

func (c *checkinStaffServiceClient) IsStaff(ctx context.Context, in *IsStaffRequest, opts ...grpc.CallOption) (*IsStaffResponse, error) {
	out := new(IsStaffResponse)
	err := c.cc.Invoke(ctx, "/checkin.staff.StaffService/IsStaff", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkinStaffServiceClient) AddEventToUser(ctx context.Context, in *AddEventToUserRequest, opts ...grpc.CallOption) (*AddEventToUserResponse, error) {
	out := new(AddEventToUserResponse)
	err := c.cc.Invoke(ctx, "/checkin.staff.StaffService/AddEventToUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckinEventServiceClient is the client API for checkin.event.EventService.
type CheckinEventServiceClient interface {
	GetEventsByNamespaceId(ctx context.Context, in *GetEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*GetEventsByNamespaceIdResponse, error)
}

type checkinEventServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckinEventServiceClient(cc grpc.ClientConnInterface) CheckinEventServiceClient {
	return &checkinEventServiceClient{cc}
}

func (c *checkinEventServiceClient) GetEventsByNamespaceId(ctx context.Context, in *GetEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*GetEventsByNamespaceIdResponse, error) {
	out := new(GetEventsByNamespaceIdResponse)
	err := c.cc.Invoke(ctx, "/checkin.event.EventService/GetEventsByNamespaceId", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
