package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server runs the checklist API. It owns the checklist store handle so that
// shutdown closes storage only after the last in-flight request drained.
type Server struct {
	srv    *http.Server
	store  io.Closer
	logger *slog.Logger

	mu        sync.Mutex
	ln        net.Listener
	listening chan struct{}
}

// NewServer creates a server for handler. store may be nil when there is
// nothing to close on shutdown.
func NewServer(cfg config.ServerConfig, handler http.Handler, store io.Closer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		store:     store,
		logger:    logger,
		listening: make(chan struct{}),
	}
}

// Start binds the listener and serves until Shutdown. Returns nil on
// graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	close(s.listening)

	s.logger.Info("checklist API listening", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Listening is closed once Start has bound its listener.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Shutdown drains in-flight requests, then closes the checklist store. If
// ctx has no deadline a 10-second timeout is applied to the drain.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("draining checklist API")
	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("draining requests: %w", err))
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing checklist store: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Addr returns the bound address once listening, and the configured
// address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
