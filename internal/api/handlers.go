package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/service"
)

// Version is reported by the health check
var Version = "v1.0.0"

// RouteConfig carries everything RegisterRoutes needs besides the services
type RouteConfig struct {
	PingMessage string
	// RecommendGuards run before the recommend handler, e.g. the rate limiter
	RecommendGuards []gin.HandlerFunc
	// Metrics is mounted at /metrics when set
	Metrics http.Handler
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "RecipeAI API is running",
		"version": Version,
	})
}

// Ping answers with the configured ping message
func Ping(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// Demo is the sample greeting route
func Demo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the RecipeAI server"})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recommendations service.IRecommendationService, auth service.IAuthService, cfg RouteConfig, logger *zap.Logger) {
	router.GET("/health", HealthCheck)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	api := router.Group("/api")
	api.GET("/health", HealthCheck)
	api.GET("/ping", Ping(cfg.PingMessage))
	api.GET("/demo", Demo)

	NewRecipeHandler(recommendations, logger.Named("recipes")).RegisterRoutes(api, cfg.RecommendGuards...)
	NewAuthHandler(auth, logger.Named("auth")).RegisterRoutes(api)
}
