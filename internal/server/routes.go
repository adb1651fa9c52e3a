package server

import (
	"github.com/nfrund/voxnote/internal/handlers"
	"github.com/nfrund/voxnote/internal/middleware"
	"github.com/nfrund/voxnote/web/src/templates/components"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultAuthRate, 20)

	s.E.GET("/", s.landingHandler.Index)
	s.E.GET(components.NavFragmentPath, s.landingHandler.NavFragment)

	authGroup := s.E.Group("/auth", rateLimiter)
	authGroup.GET("/google", s.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", s.authHandler.GoogleCallback)

	s.E.GET("/health", handlers.Health)
}
