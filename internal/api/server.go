package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// Server wraps http.Server with the service's timeouts and logging.
// ⭐ SSOT: API server settings live in this file and nowhere else.
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
	port       string
	env        string
}

// New builds the HTTP server around the given router. The timeouts
// cover plain HTTP requests; upgraded websocket connections manage
// their own deadlines.
func New(cfg *config.Config, log *logger.Logger, router http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log:  log,
		port: cfg.Port,
		env:  cfg.Env,
	}
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.WithFields(map[string]interface{}{
		"port": s.port,
		"env":  s.env,
	}).Info("Starting API server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
