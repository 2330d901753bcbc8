// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"log/slog"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/processing"
)

// PipelineFactory returns a pipeline owned by a single request.
type PipelineFactory func() *processing.Pipeline

type Server struct {
	*echo.Echo
	newPipeline PipelineFactory
	cacheHealth *atomic.Bool
}

// NewServer wires routes and middleware. Every request gets its own pipeline;
// only cfg and the optional cache are shared.
func NewServer(cfg *config.Config, cache processing.CommentCache) *Server {
	return NewServerWithFactory(func() *processing.Pipeline {
		return processing.NewPipelineFromConfig(cfg, cache)
	})
}

func NewServerWithFactory(factory PipelineFactory) *Server {
	s := &Server{
		Echo:        echo.New(),
		newPipeline: factory,
	}
	s.setupMiddleware()
	s.registerRoutes()
	return s
}

// WithCacheHealth reports the cache state from healthy on /healthz.
func (s *Server) WithCacheHealth(healthy *atomic.Bool) *Server {
	s.cacheHealth = healthy
	return s
}

func (s *Server) registerRoutes() {
	s.GET("/healthz", HandleHealth(func() *atomic.Bool { return s.cacheHealth }))

	v1 := s.Group("/api/v1")
	v1.GET("/analysis", HandleAnalysis(s.newPipeline))
}

func (s *Server) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.Info("[API] Request", attrs...)
			return nil
		},
	}))
}
