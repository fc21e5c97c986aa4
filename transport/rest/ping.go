package rest

import (
	"io"
	"log/slog"
	"net/http"
)

// PingHandler answers liveness checks. It never touches the session store.
type PingHandler struct {
	logger *slog.Logger
}

func NewPingHandler(logger *slog.Logger) *PingHandler {
	return &PingHandler{logger: logger.With("component", "ping")}
}

func (that *PingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, "pong"); err != nil {
		that.logger.Warn("failed to write ping response", "error", err)
	}
}
