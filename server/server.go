// Package server exposes the curve catalog and animator simulation over HTTP
package server

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tween/config"
	"github.com/lixenwraith/tween/curve"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Server serves the curve API
type Server struct {
	registry  *curve.Registry
	cfg       config.ServerConfig
	log       logxi.Logger
	startTime time.Time
	http      *http.Server
}

// NewServer creates a server over registry; nil registry uses curve.Catalog
func NewServer(registry *curve.Registry, cfg config.ServerConfig, log logxi.Logger) *Server {
	if registry == nil {
		registry = curve.Catalog
	}
	if log == nil {
		log = logxi.NullLog
	}
	s := &Server{
		registry:  registry,
		cfg:       cfg,
		log:       log,
		startTime: time.Now(),
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds a gin engine with CORS, recovery, request logging and routes
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.Use(cors.New(corsConfig(s.cfg.AllowOrigins)))

	s.SetupRoutes(r)
	return r
}

// corsConfig allows origins, defaulting to any
// Credentials are only allowed for explicit origins; browsers reject them with "*"
func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := slices.Contains(origins, "*")
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !wildcard,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRoutes registers the API routes on r
func (s *Server) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		curves := api.Group("/curves")
		{
			curves.GET("", s.handleListCurves)
			curves.GET("/:name", s.handleGetCurve)
			curves.GET("/:name/samples", s.handleSamples)
			curves.POST("/:name/simulate", s.handleSimulate)
		}
	}
}

// ListenAndServe serves on cfg.Addr until Shutdown
func (s *Server) ListenAndServe() error {
	s.log.Info("listening", "addr", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "failed to serve on %s", s.cfg.Addr)
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Wrap(s.http.Shutdown(ctx), "shutdown")
}

// requestLogger logs each request at debug level
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.log.IsDebug() {
			s.log.Debug("request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"latency", time.Since(start).String(),
			)
		}
	}
}
