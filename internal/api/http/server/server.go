package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openshelf/openshelf-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer wraps an http.Server with address and lifecycle methods.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates an HTTPServer serving the given handler on addr.
func NewHTTPServer(handler http.Handler, addr string, readHeaderTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		addr: addr,
	}
}

// Start starts serving on the configured address using the provided
// security layer. It blocks until the server stops.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
