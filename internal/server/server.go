// Package server exposes the letter engine over HTTP. All transport and
// concurrency concerns live here; the engine stays a pure function.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"letter-engine/internal/common/config"
	"letter-engine/internal/common/logger"
	"letter-engine/internal/common/metrics"
	"letter-engine/internal/common/observability"
	"letter-engine/internal/letter/engine"
)

type Server struct {
	cfg    *config.Config
	logger logger.Logger
	engine *engine.Engine
	obs    *observability.Observability
	router *gin.Engine
}

func New(cfg *config.Config, log logger.Logger, eng *engine.Engine, obs *observability.Observability) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "api"}),
		engine: eng,
		obs:    obs,
		router: router,
	}

	router.Use(s.requestLogger())

	api := router.Group("/api/v1")
	{
		api.POST("/letters", s.handleGenerate)
		api.GET("/letter-types", s.handleListTypes)
		api.GET("/letter-types/:type/reasons", s.handleListReasons)
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the handler tree for tests and for custom http.Server wiring.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("requestId", requestID)
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, statusLabel(status)).Inc()
		if s.obs != nil {
			s.obs.RecordRequest(c.Request.Context(), route, statusLabel(status))
			s.obs.RecordRequestDuration(c.Request.Context(), route, elapsed)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"durationMs": elapsed.Milliseconds(),
		})
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
