// Package logger provides structured logging functionality for the gateway.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/freshfest/gateway-api/internal/config"
)

// Setup initializes the gateway's logging system from the server
// configuration. It creates a structured JSON logger at the configured
// level, sets it as the process default, and returns it.
func Setup(cfg config.ServerConfig) *slog.Logger {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output destination. Tests use
// it to capture log lines.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// Config validation rejects unknown levels before we get here, but
		// fall back to info rather than panicking on a hand-built config.
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewJSONHandler(w, opts))

	// Set this logger as the default so the slog package functions
	// (slog.Info, slog.Error, etc.) route through it too.
	slog.SetDefault(logger)

	return logger
}
