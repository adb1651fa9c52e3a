package server

import (
	"context"
	"errors"
)

// Shutdown stops accepting requests, waits for in-flight ones until ctx ends,
// then closes the event bus, the pending-login cache and the content watcher.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.E.Shutdown(ctx)
	s.close()
	return err
}

func (s *Server) close() {
	if err := s.Bus.Close(); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to close event bus", "error", err)
	}
	s.Flow.Stop()
	if s.contentWatcher != nil {
		if err := s.contentWatcher.Close(); err != nil {
			s.logger.Warn("Failed to stop content watcher", "error", err)
		}
	}
}
