// Package server assembles the HTTP server: middleware chain, services and routes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/config"
	"github.com/pageza/recipeai/backend/internal/api"
	"github.com/pageza/recipeai/backend/internal/metrics"
	"github.com/pageza/recipeai/backend/internal/middleware"
	"github.com/pageza/recipeai/backend/internal/router"
	"github.com/pageza/recipeai/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates a new server instance. templates may be nil for the built-in
// set; redisClient may be nil, which disables rate limiting.
func New(cfg *config.Config, logger *zap.Logger, templates *service.TemplateSet, redisClient *redis.Client) *Server {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if templates == nil {
		templates = service.DefaultTemplates()
	}

	m := metrics.New()

	client := service.NewUpstreamClient(cfg.UpstreamTimeout, cfg.UpstreamAPIKey)
	recommendations := service.NewRecommendationService(client, cfg.RecommendURL, templates, logger, m)
	auth := service.NewAuthService(client, cfg.AuthURL, logger, m)

	routes := api.RouteConfig{PingMessage: cfg.PingMessage}
	if redisClient != nil && cfg.RateLimitEnabled() {
		limiter := middleware.NewRecommendRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, logger.Named("ratelimit"))
		routes.RecommendGuards = append(routes.RecommendGuards, limiter.Middleware())
	}
	engine := router.SetupRouter(recommendations, auth, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Routes:         routes,
		Metrics:        m,
	}, logger)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:  logger,
		metrics: m,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
