// Client stub for file.FileService.

package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// FileServiceClient is the client API for FileService service.
type FileServiceClient interface {
	Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error)
}

type fileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFileServiceClient(cc grpc.ClientConnInterface) FileServiceClient {
	return &fileServiceClient{cc}
}

func (c *fileServiceClient) Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	out := new(UploadResponse)
	err := c.cc.Invoke(ctx, "/file.FileService/Upload", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
