// Package server assembles the HTTP surface of the migration service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apollotravel/apollo-migration/engine/migration/router"
	"github.com/apollotravel/apollo-migration/engine/migration/uc"
	"github.com/apollotravel/apollo-migration/pkg/config"
	"github.com/apollotravel/apollo-migration/pkg/logger"
)

const (
	// APIBase prefixes every versioned route.
	APIBase = "/api/v0"

	httpReadTimeout       = 15 * time.Second
	httpWriteTimeout      = 15 * time.Second
	httpIdleTimeout       = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// Server wires the gin engine, middleware and migration routes.
type Server struct {
	cfg        *config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer builds a server around the migration use-case factory.
func NewServer(ctx context.Context, cfg *config.ServerConfig, factory *uc.Factory) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(loggerMiddleware(ctx))
	apiBase := engine.Group(APIBase)
	apiBase.GET("/health", healthHandler)
	router.RegisterRoutes(apiBase, factory)
	return &Server{cfg: cfg, router: engine}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	log.Info("Server started", "addr", addr, "api_base", APIBase)
	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"status": "healthy"},
		"message": "Success",
	})
}
