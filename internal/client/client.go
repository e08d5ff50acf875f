// Package client owns the gRPC connections to the backend services and
// hands out typed service clients built on them. Connections are created
// lazily by grpc-go, so constructing the pool never blocks on an
// unreachable backend; failures surface per-call instead.
package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/freshfest/gateway-api/internal/config"
	"github.com/freshfest/gateway-api/internal/proto"
)

// Pool holds one connection per backend process. The user, baan, and
// group services all live in the backend process and share its connection.
type Pool struct {
	authConn    *grpc.ClientConn
	backendConn *grpc.ClientConn
	fileConn    *grpc.ClientConn
	checkinConn *grpc.ClientConn
}

// NewPool dials every configured backend. Backends speak plaintext gRPC on
// an internal network, so transport security is disabled.
func NewPool(cfg config.ServicesConfig) (*Pool, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	p := &Pool{}
	for _, target := range []struct {
		name string
		addr string
		conn **grpc.ClientConn
	}{
		{"auth", cfg.Auth, &p.authConn},
		{"backend", cfg.Backend, &p.backendConn},
		{"file", cfg.File, &p.fileConn},
		{"checkin", cfg.Checkin, &p.checkinConn},
	} {
		conn, err := grpc.NewClient(target.addr, opts...)
		if err != nil {
			// Close whatever already succeeded before bailing.
			_ = p.Close()
			return nil, fmt.Errorf("creating %s service connection to %s: %w", target.name, target.addr, err)
		}
		*target.conn = conn
	}

	return p, nil
}

// Auth returns a client for the authentication service.
func (p *Pool) Auth() proto.AuthServiceClient {
	return proto.NewAuthServiceClient(p.authConn)
}

// User returns a client for the user service on the backend connection.
func (p *Pool) User() proto.UserServiceClient {
	return proto.NewUserServiceClient(p.backendConn)
}

// Baan returns a client for the baan service on the backend connection.
func (p *Pool) Baan() proto.BaanServiceClient {
	return proto.NewBaanServiceClient(p.backendConn)
}

// Group returns a client for the group service on the backend connection.
func (p *Pool) Group() proto.GroupServiceClient {
	return proto.NewGroupServiceClient(p.backendConn)
}

// File returns a client for the file storage service.
func (p *Pool) File() proto.FileServiceClient {
	return proto.NewFileServiceClient(p.fileConn)
}

// CheckinUser returns a client for the user-facing check-in service.
func (p *Pool) CheckinUser() proto.CheckinUserServiceClient {
	return proto.NewCheckinUserServiceClient(p.checkinConn)
}

// CheckinStaff returns a client for the staff-facing check-in service.
func (p *Pool) CheckinStaff() proto.CheckinStaffServiceClient {
	return proto.NewCheckinStaffServiceClient(p.checkinConn)
}

// CheckinEvent returns a client for the event query service.
func (p *Pool) CheckinEvent() proto.CheckinEventServiceClient {
	return proto.NewCheckinEventServiceClient(p.checkinConn)
}

// Close tears down every open connection and joins any close errors.
func (p *Pool) Close() error {
	var errs []error
	for _, conn := range []*grpc.ClientConn{p.authConn, p.backendConn, p.fileConn, p.checkinConn} {
		if conn == nil {
			continue
		}
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
