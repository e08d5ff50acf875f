// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. The gateway handles bearer tokens on
// every authenticated request, so anything that might carry a credential
// goes through this package on its way to a log line.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder = "[REDACTED]"
	TokenTailPlaceholder = "REDACTED"
	MalformedTokenText   = "[MALFORMED_TOKEN]"
)

// Precompiled regex patterns
var (
	// JWT token pattern - matches the standard three-part base64url-encoded format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Authorization header values captured whole
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`)

	// Generic credential assignments (token=..., secret: ...)
	credentialRegex = regexp.MustCompile(`(?i)(token|secret|credential|api[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	patterns = []*regexp.Regexp{jwtTokenRegex, bearerRegex, credentialRegex}
)

// Token reduces a three-segment token to its header and payload segments
// with the signature replaced, so log lines can correlate requests by token
// without ever holding a usable credential. Inputs that are not three
// dot-separated segments yield a fixed malformed marker with no fragment of
// the original value.
func Token(raw string) string {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return MalformedTokenText
	}
	return parts[0] + "." + parts[1] + "." + TokenTailPlaceholder
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, RedactionPlaceholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
