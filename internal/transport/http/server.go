// Package httptransport builds the HTTP server hosting the enrollment API.
package httptransport

import (
	"net/http"
	"time"
)

// ServerConfig holds address and timeout tunables. Roster operations are
// in-memory and fast, so the timeouts bound slow clients, not handlers.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer wraps the handler in an *http.Server with the configured timeouts.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
