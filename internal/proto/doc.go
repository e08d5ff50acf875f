// Package proto carries hand-maintained Go bindings for the backend gRPC
// contracts the gateway calls. The backend teams own the .proto sources; the
// gateway only mirrors the subset of messages and RPCs it actually uses, in
// the same shape protoc-gen-go would emit, so the full generated packages do
// not need to be vendored here.
package proto
