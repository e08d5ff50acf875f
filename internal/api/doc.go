// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. Handlers orchestrate the domain services and
// authorization checks; they carry no business logic of their own.
package api
