package dashboard

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// HTTP server timeout constants
const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Server runs the dashboard over HTTP.
type Server struct {
	server *http.Server
}

// NewServer creates a server for d listening on port.
func NewServer(port int, d *Dashboard) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      d.Handler(),
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start blocks serving requests until the server is shut down.
func (s *Server) Start() error {
	log.Printf("SERVER: listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("SERVER: shutting down")
	return s.server.Shutdown(ctx)
}
