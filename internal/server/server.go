package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/yukikurage/todo-api/internal/config"
)

// Server runs the HTTP listener until its context is cancelled.
type Server struct {
	httpSrv         *http.Server
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// New builds a Server serving handler on cfg.Address().
func New(cfg config.ServerConfig, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		httpSrv: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: time.Duration(cfg.ShutdownTimeout) * time.Second,
		log:             log,
	}
}

// Run serves until ctx is done, then drains in-flight requests for up to the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server", slog.Duration("timeout", s.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
