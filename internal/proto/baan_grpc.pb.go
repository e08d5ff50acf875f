// Client stub for baan.BaanService.

package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// BaanServiceClient is the client API for BaanService service.
type BaanServiceClient interface {
	FindAllBaan(ctx context.Context, in *FindAllBaanRequest, opts ...grpc.CallOption) (*FindAllBaanResponse, error)
	FindOneBaan(ctx context.Context, in *FindOneBaanRequest, opts ...grpc.CallOption) (*FindOneBaanResponse, error)
}

type baanServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBaanServiceClient(cc grpc.ClientConnInterface) BaanServiceClient {
	return &baanServiceClient{cc}
}

func (c *baanServiceClient) FindAllBaan(ctx context.Context, in *FindAllBaanRequest, opts ...grpc.CallOption) (*FindAllBaanResponse, error) {
	out := new(FindAllBaanResponse)
	err := c.cc.Invoke(ctx, "/baan.BaanService/FindAllBaan", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *baanServiceClient) FindOneBaan(ctx context.Context, in *FindOneBaanRequest, opts ...grpc.CallOption) (*FindOneBaanResponse, error) {
	out := new(FindOneBaanResponse)
	err := c.cc.Invoke(ctx, "/baan.BaanService/FindOneBaan", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
