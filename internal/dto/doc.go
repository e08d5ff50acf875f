// Package dto defines the wire-facing request and response shapes of the
// gateway and the explicit mapping functions between them and the backend
// message types. Mappings are written field by field so a new backend field
// never silently leaks to clients, and request-side mappings fill the
// fields the gateway is authoritative for (notably the resolved user id).
package dto
