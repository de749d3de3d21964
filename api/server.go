// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine invocation,
// output serialization. It never computes a business figure.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"saas-economics/core/engine"
)

// Options configures a Server
type Options struct {
	// Version is reported by /version and in response metadata
	Version string

	// AllowOrigins feeds the CORS middleware; empty allows all
	AllowOrigins []string

	// Logger receives one line per request; nil disables request logging
	Logger *zap.Logger
}

// Server is the API server
type Server struct {
	echo    *echo.Echo
	handler *Handler
	logger  *zap.Logger
}

// NewServer creates a new API server around an engine
func NewServer(eng *engine.Engine, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(RequestIDMiddleware())
	e.Use(LoggerMiddleware(logger))
	e.Use(RecoverMiddleware())
	e.Use(CORSMiddleware(opts.AllowOrigins))

	s := &Server{
		echo:    e,
		handler: NewHandler(eng, opts.Version),
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	h := s.handler

	s.echo.GET("/health", h.Health)
	s.echo.GET("/version", h.Version)

	v1 := s.echo.Group("/v1")
	v1.POST("/estimate", h.Estimate)
	v1.GET("/estimate", h.EstimateQuery)
	v1.POST("/projection", h.Projection)
	v1.POST("/scenarios", h.Scenarios)
	v1.POST("/advice", h.Advice)
	v1.GET("/tiers", h.Tiers)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.logger.Info("api listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
