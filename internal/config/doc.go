// Package config handles configuration loading, parsing, and validation
// from environment variables and optional config files. It provides
// type-safe access to the gateway's settings (server, event cycle, backend
// addresses) while keeping configuration details separate from business
// logic.
package config
