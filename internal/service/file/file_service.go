// Package file wraps the upload operation of the file storage service.
package file

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Service exposes the file domain operations.
type Service struct {
	client proto.FileServiceClient
}

// NewService creates a file service on the given backend client.
func NewService(client proto.FileServiceClient) *Service {
	return &Service{client: client}
}

// Upload stores the given bytes under the caller's identity and returns
// the public URL of the stored object.
func (s *Service) Upload(ctx context.Context, data []byte, filename, userID string, tag, fileType int32) (string, error) {
	resp, err := s.client.Upload(ctx, &proto.UploadRequest{
		Data:     data,
		Filename: filename,
		UserId:   userID,
		Tag:      tag,
		Type:     fileType,
	})
	if err != nil {
		return "", apperr.FromRPC(err)
	}
	return resp.GetUrl(), nil
}
