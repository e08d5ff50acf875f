package mocks

import (
	"context"

	"google.golang.org/grpc"

	"github.com/freshfest/gateway-api/internal/proto"
)

// CheckinUserClient is a mock implementation of proto.CheckinUserServiceClient.
type CheckinUserClient struct {
	GetUserEventByEventIdFunc         func(ctx context.Context, in *proto.GetUserEventByEventIdRequest, opts ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error)
	AddEventFunc                      func(ctx context.Context, in *proto.AddEventRequest, opts ...grpc.CallOption) (*proto.AddEventResponse, error)
	GetAllUserEventsByNamespaceIdFunc func(ctx context.Context, in *proto.GetAllUserEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*proto.GetAllUserEventsByNamespaceIdResponse, error)
}

func (m *CheckinUserClient) GetUserEventByEventId(ctx context.Context, in *proto.GetUserEventByEventIdRequest, opts ...grpc.CallOption) (*proto.GetUserEventByEventIdResponse, error) {
	if m.GetUserEventByEventIdFunc != nil {
		return m.GetUserEventByEventIdFunc(ctx, in, opts...)
	}
	return &proto.GetUserEventByEventIdResponse{}, nil
}

func (m *CheckinUserClient) AddEvent(ctx context.Context, in *proto.AddEventRequest, opts ...grpc.CallOption) (*proto.AddEventResponse, error) {
	if m.AddEventFunc != nil {
		return m.AddEventFunc(ctx, in, opts...)
	}
	return &proto.AddEventResponse{}, nil
}

func (m *CheckinUserClient) GetAllUserEventsByNamespaceId(ctx context.Context, in *proto.GetAllUserEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*proto.GetAllUserEventsByNamespaceIdResponse, error) {
	if m.GetAllUserEventsByNamespaceIdFunc != nil {
		return m.GetAllUserEventsByNamespaceIdFunc(ctx, in, opts...)
	}
	return &proto.GetAllUserEventsByNamespaceIdResponse{}, nil
}

// CheckinStaffClient is a mock implementation of proto.CheckinStaffServiceClient.
type CheckinStaffClient struct {
	IsStaffFunc        func(ctx context.Context, in *proto.IsStaffRequest, opts ...grpc.CallOption) (*proto.IsStaffResponse, error)
	AddEventToUserFunc func(ctx context.Context, in *proto.AddEventToUserRequest, opts ...grpc.CallOption) (*proto.AddEventToUserResponse, error)
}

func (m *CheckinStaffClient) IsStaff(ctx context.Context, in *proto.IsStaffRequest, opts ...grpc.CallOption) (*proto.IsStaffResponse, error) {
	if m.IsStaffFunc != nil {
		return m.IsStaffFunc(ctx, in, opts...)
	}
	return &proto.IsStaffResponse{}, nil
}

func (m *CheckinStaffClient) AddEventToUser(ctx context.Context, in *proto.AddEventToUserRequest, opts ...grpc.CallOption) (*proto.AddEventToUserResponse, error) {
	if m.AddEventToUserFunc != nil {
		return m.AddEventToUserFunc(ctx, in, opts...)
	}
	return &proto.AddEventToUserResponse{}, nil
}

// CheckinEventClient is a mock implementation of proto.CheckinEventServiceClient.
type CheckinEventClient struct {
	GetEventsByNamespaceIdFunc func(ctx context.Context, in *proto.GetEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*proto.GetEventsByNamespaceIdResponse, error)
}

func (m *CheckinEventClient) GetEventsByNamespaceId(ctx context.Context, in *proto.GetEventsByNamespaceIdRequest, opts ...grpc.CallOption) (*proto.GetEventsByNamespaceIdResponse, error) {
	if m.GetEventsByNamespaceIdFunc != nil {
		return m.GetEventsByNamespaceIdFunc(ctx, in, opts...)
	}
	return &proto.GetEventsByNamespaceIdResponse{}, nil
}
