package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sightline-labs/heatmap-overlay/internal/config"
)

// Server wires the heatmap pipeline to an HTTP frontend.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New creates a server from the given configuration and registers its routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		engine: gin.Default(),
	}

	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/generate-overlay", s.handleGenerateOverlay)

	return s
}

// Run starts serving on the configured address, blocking until the listener
// fails.
func (s *Server) Run() error {
	if err := s.engine.Run(s.cfg.Server.Addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Handler exposes the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}
