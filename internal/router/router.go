package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/api"
	"github.com/pageza/recipeai/backend/internal/metrics"
	"github.com/pageza/recipeai/backend/internal/middleware"
	"github.com/pageza/recipeai/backend/internal/service"
)

// Paths that are polled too often to be worth a log line
var quietPaths = []string{"/health", "/api/health", "/metrics"}

// Options configures SetupRouter
type Options struct {
	AllowedOrigins []string
	Routes         api.RouteConfig
	Metrics        *metrics.Metrics
}

// SetupRouter configures the middleware chain and application routes
func SetupRouter(
	recommendations service.IRecommendationService,
	auth service.IAuthService,
	opts Options,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger.Named("http"), quietPaths...),
		middleware.Recovery(logger),
		middleware.CORS(opts.AllowedOrigins),
	)
	if opts.Metrics != nil {
		router.Use(opts.Metrics.HTTPMiddleware())
		if opts.Routes.Metrics == nil {
			opts.Routes.Metrics = opts.Metrics.Handler()
		}
	}

	api.RegisterRoutes(router, recommendations, auth, opts.Routes, logger)
	return router
}
