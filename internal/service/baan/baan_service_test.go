package baan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/mocks"
	"github.com/freshfest/gateway-api/internal/proto"
	"github.com/freshfest/gateway-api/internal/service/baan"
)

func TestFindAll_PreservesOrderAndSizes(t *testing.T) {
	t.Parallel()

	client := &mocks.BaanClient{
		FindAllBaanFunc: func(_ context.Context, _ *proto.FindAllBaanRequest, _ ...grpc.CallOption) (*proto.FindAllBaanResponse, error) {
			return &proto.FindAllBaanResponse{Baans: []*proto.Baan{
				{Id: "b-2", Size: 5},
				{Id: "b-1", Size: 9},
			}}, nil
		},
	}

	svc := baan.NewService(client)
	got, err := svc.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b-2", got[0].ID)
	assert.Equal(t, dto.BaanSizeXXL, got[0].Size)
	assert.Equal(t, "b-1", got[1].ID)
	assert.Equal(t, dto.BaanSizeUnknown, got[1].Size, "out-of-range size maps to Unknown")
}

func TestFindOne(t *testing.T) {
	t.Parallel()

	client := &mocks.BaanClient{
		FindOneBaanFunc: func(_ context.Context, in *proto.FindOneBaanRequest, _ ...grpc.CallOption) (*proto.FindOneBaanResponse, error) {
			assert.Equal(t, "b-1", in.Id)
			return &proto.FindOneBaanResponse{Baan: &proto.Baan{Id: "b-1", NameEn: "Dome", Size: 2}}, nil
		},
	}

	svc := baan.NewService(client)
	got, err := svc.FindOne(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "Dome", got.NameEN)
	assert.Equal(t, dto.BaanSizeM, got.Size)
}

func TestFindOne_MissingBaanInReply(t *testing.T) {
	t.Parallel()

	svc := baan.NewService(&mocks.BaanClient{})
	_, err := svc.FindOne(context.Background(), "b-1")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFindAll_ServiceDown(t *testing.T) {
	t.Parallel()

	client := &mocks.BaanClient{
		FindAllBaanFunc: func(_ context.Context, _ *proto.FindAllBaanRequest, _ ...grpc.CallOption) (*proto.FindAllBaanResponse, error) {
			return nil, status.Error(codes.Unavailable, "down")
		},
	}

	svc := baan.NewService(client)
	_, err := svc.FindAll(context.Background())

	assert.ErrorIs(t, err, apperr.ErrServiceDown)
}
