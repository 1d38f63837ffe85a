// Package server wires the blueprint service into an HTTP API with SSE and
// websocket progress streaming.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-logr/logr"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server runs the API over h2c so gRPC-style HTTP/2 clients work without TLS.
type Server struct {
	httpServer *http.Server
	log        logr.Logger
}

func New(port string, handler http.Handler, log logr.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    port,
			Handler: h2c.NewHandler(handler, &http2.Server{}),
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Info("starting API server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
