package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/voxnote/internal/pubsub"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until SIGINT or SIGTERM.
func (s *Server) Start(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx, addr)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.Flow.Start()

	if s.contentWatcher != nil {
		if err := s.contentWatcher.Start(); err != nil {
			s.logger.Warn("Content file will not be reloaded", "path", s.Cfg.ContentFile, "error", err)
		}
	}

	if err := pubsub.SubscribeLoginAttempts(context.Background(), s.Bus, pubsub.LogLoginAttempts(s.logger)); err != nil {
		s.logger.Warn("Login audit trail disabled", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			s.close()
			return err
		}
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
