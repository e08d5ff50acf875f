package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshfest/gateway-api/internal/config"
	"github.com/freshfest/gateway-api/internal/platform/logger"
)

func TestSetupWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)
	require.NotNil(t, log)

	log.Info("server started", "port", 8080)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be JSON")
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, float64(8080), entry["port"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestSetupWithWriter_LevelFiltering(t *testing.T) {
	testCases := []struct {
		configured string
		debugSeen  bool
		warnSeen   bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"WARN", false, true},  // case-insensitive
		{"bogus", false, true}, // unknown level falls back to info
	}

	for _, tc := range testCases {
		t.Run(tc.configured, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.SetupWithWriter(config.ServerConfig{LogLevel: tc.configured}, &buf)

			log.Debug("debug line")
			log.Warn("warn line")

			out := buf.String()
			assert.Equal(t, tc.debugSeen, bytes.Contains([]byte(out), []byte("debug line")))
			assert.Equal(t, tc.warnSeen, bytes.Contains([]byte(out), []byte("warn line")))
		})
	}
}
