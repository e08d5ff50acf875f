package api

import (
	"log/slog"
	"net/http"
)

// Health answers liveness probes with a bare "OK".
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("failed to write health check response", "error", err)
	}
}
