package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/apperrors"
	"github.com/pageza/recipeai/backend/internal/middleware"
	"github.com/pageza/recipeai/backend/internal/service"
	"github.com/pageza/recipeai/backend/internal/types"
)

// RecipeSourceHeader tells clients whether recipes came from the remote
// service or the fallback templates
const RecipeSourceHeader = "X-Recipe-Source"

// RecipeHandler handles recipe suggestion requests
type RecipeHandler struct {
	recommendations service.IRecommendationService
	logger          *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recommendations service.IRecommendationService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recommendations: recommendations,
		logger:          logger,
	}
}

// RegisterRoutes registers the recipe routes. guards run in front of the
// recommend handler only.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		handlers := append(append([]gin.HandlerFunc{}, guards...), h.Recommend)
		recipes.POST("/recommend", handlers...)
	}
}

// Recommend handles POST /api/recipes/recommend
func (h *RecipeHandler) Recommend(c *gin.Context) {
	var req types.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperrors.NewValidationError("ingredients must be an array of strings"))
		return
	}
	ingredients, ok := req.IngredientValues()
	if !ok {
		middleware.RespondError(c, apperrors.NewValidationError("ingredients is required and may not contain null"))
		return
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), ingredients)
	if err != nil {
		h.logger.Error("recommendation failed", zap.Error(err))
		middleware.RespondError(c, err)
		return
	}

	recipes := result.Recipes
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	c.Header(RecipeSourceHeader, string(result.Source))
	c.JSON(http.StatusOK, recipes)
}
