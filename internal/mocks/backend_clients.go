package mocks

import (
	"context"

	"google.golang.org/grpc"

	"github.com/freshfest/gateway-api/internal/proto"
)

// UserClient is a mock implementation of proto.UserServiceClient.
type UserClient struct {
	FindOneFunc func(ctx context.Context, in *proto.FindOneUserRequest, opts ...grpc.CallOption) (*proto.FindOneUserResponse, error)
	UpdateFunc  func(ctx context.Context, in *proto.UpdateUserRequest, opts ...grpc.CallOption) (*proto.UpdateUserResponse, error)
}

func (m *UserClient) FindOne(ctx context.Context, in *proto.FindOneUserRequest, opts ...grpc.CallOption) (*proto.FindOneUserResponse, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, in, opts...)
	}
	return &proto.FindOneUserResponse{}, nil
}

func (m *UserClient) Update(ctx context.Context, in *proto.UpdateUserRequest, opts ...grpc.CallOption) (*proto.UpdateUserResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, in, opts...)
	}
	return &proto.UpdateUserResponse{}, nil
}

// BaanClient is a mock implementation of proto.BaanServiceClient.
type BaanClient struct {
	FindAllBaanFunc func(ctx context.Context, in *proto.FindAllBaanRequest, opts ...grpc.CallOption) (*proto.FindAllBaanResponse, error)
	FindOneBaanFunc func(ctx context.Context, in *proto.FindOneBaanRequest, opts ...grpc.CallOption) (*proto.FindOneBaanResponse, error)
}

func (m *BaanClient) FindAllBaan(ctx context.Context, in *proto.FindAllBaanRequest, opts ...grpc.CallOption) (*proto.FindAllBaanResponse, error) {
	if m.FindAllBaanFunc != nil {
		return m.FindAllBaanFunc(ctx, in, opts...)
	}
	return &proto.FindAllBaanResponse{}, nil
}

func (m *BaanClient) FindOneBaan(ctx context.Context, in *proto.FindOneBaanRequest, opts ...grpc.CallOption) (*proto.FindOneBaanResponse, error) {
	if m.FindOneBaanFunc != nil {
		return m.FindOneBaanFunc(ctx, in, opts...)
	}
	return &proto.FindOneBaanResponse{}, nil
}

// GroupClient is a mock implementation of proto.GroupServiceClient.
type GroupClient struct {
	FindOneFunc      func(ctx context.Context, in *proto.FindOneGroupRequest, opts ...grpc.CallOption) (*proto.FindOneGroupResponse, error)
	FindByTokenFunc  func(ctx context.Context, in *proto.FindByTokenGroupRequest, opts ...grpc.CallOption) (*proto.FindByTokenGroupResponse, error)
	JoinFunc         func(ctx context.Context, in *proto.JoinGroupRequest, opts ...grpc.CallOption) (*proto.JoinGroupResponse, error)
	DeleteMemberFunc func(ctx context.Context, in *proto.DeleteMemberGroupRequest, opts ...grpc.CallOption) (*proto.DeleteMemberGroupResponse, error)
	LeaveFunc        func(ctx context.Context, in *proto.LeaveGroupRequest, opts ...grpc.CallOption) (*proto.LeaveGroupResponse, error)
	SelectBaanFunc   func(ctx context.Context, in *proto.SelectBaanRequest, opts ...grpc.CallOption) (*proto.SelectBaanResponse, error)
}

func (m *GroupClient) FindOne(ctx context.Context, in *proto.FindOneGroupRequest, opts ...grpc.CallOption) (*proto.FindOneGroupResponse, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, in, opts...)
	}
	return &proto.FindOneGroupResponse{}, nil
}

func (m *GroupClient) FindByToken(ctx context.Context, in *proto.FindByTokenGroupRequest, opts ...grpc.CallOption) (*proto.FindByTokenGroupResponse, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, in, opts...)
	}
	return &proto.FindByTokenGroupResponse{}, nil
}

func (m *GroupClient) Join(ctx context.Context, in *proto.JoinGroupRequest, opts ...grpc.CallOption) (*proto.JoinGroupResponse, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, in, opts...)
	}
	return &proto.JoinGroupResponse{}, nil
}

func (m *GroupClient) DeleteMember(ctx context.Context, in *proto.DeleteMemberGroupRequest, opts ...grpc.CallOption) (*proto.DeleteMemberGroupResponse, error) {
	if m.DeleteMemberFunc != nil {
		return m.DeleteMemberFunc(ctx, in, opts...)
	}
	return &proto.DeleteMemberGroupResponse{}, nil
}

func (m *GroupClient) Leave(ctx context.Context, in *proto.LeaveGroupRequest, opts ...grpc.CallOption) (*proto.LeaveGroupResponse, error) {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, in, opts...)
	}
	return &proto.LeaveGroupResponse{}, nil
}

func (m *GroupClient) SelectBaan(ctx context.Context, in *proto.SelectBaanRequest, opts ...grpc.CallOption) (*proto.SelectBaanResponse, error) {
	if m.SelectBaanFunc != nil {
		return m.SelectBaanFunc(ctx, in, opts...)
	}
	return &proto.SelectBaanResponse{}, nil
}

// FileClient is a mock implementation of proto.FileServiceClient.
type FileClient struct {
	UploadFunc func(ctx context.Context, in *proto.UploadRequest, opts ...grpc.CallOption) (*proto.UploadResponse, error)
}

func (m *FileClient) Upload(ctx context.Context, in *proto.UploadRequest, opts ...grpc.CallOption) (*proto.UploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, in, opts...)
	}
	return &proto.UploadResponse{}, nil
}
