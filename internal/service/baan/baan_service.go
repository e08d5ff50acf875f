// Package baan wraps the dormitory listing operations of the backend
// service.
package baan

import (
	"context"

	"github.com/freshfest/gateway-api/internal/apperr"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Service exposes the baan domain operations.
type Service struct {
	client proto.BaanServiceClient
}

// NewService creates a baan service on the given backend client.
func NewService(client proto.BaanServiceClient) *Service {
	return &Service{client: client}
}

// FindAll lists every baan in backend order.
func (s *Service) FindAll(ctx context.Context) ([]dto.Baan, error) {
	resp, err := s.client.FindAllBaan(ctx, &proto.FindAllBaanRequest{})
	if err != nil {
		return nil, apperr.FromRPC(err)
	}
	return dto.BaansFromProto(resp.GetBaans()), nil
}

// FindOne fetches a single baan by id.
func (s *Service) FindOne(ctx context.Context, baanID string) (dto.Baan, error) {
	resp, err := s.client.FindOneBaan(ctx, &proto.FindOneBaanRequest{Id: baanID})
	if err != nil {
		return dto.Baan{}, apperr.FromRPC(err)
	}
	if resp.GetBaan() == nil {
		return dto.Baan{}, apperr.ErrNotFound
	}
	return dto.BaanFromProto(resp.GetBaan()), nil
}
