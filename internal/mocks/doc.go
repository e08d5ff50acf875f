// Package mocks provides canonical mock implementations of the backend
// gRPC client interfaces for use in service and handler tests. Each mock
// exposes one function field per RPC; an unset field behaves as a backend
// that returns an empty reply.
package mocks
