package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/apperrors"
	"github.com/pageza/recipeai/backend/internal/types"
)

const recommendService = "recommend"

// RecommendationService proxies ingredient lists to the remote recommendation
// endpoint and falls back to template recipes when it cannot be used.
type RecommendationService struct {
	client    *UpstreamClient
	url       string
	templates *TemplateSet
	logger    *zap.Logger
	recorder  UpstreamRecorder
}

// NewRecommendationService creates a new RecommendationService instance.
// recorder may be nil.
func NewRecommendationService(client *UpstreamClient, url string, templates *TemplateSet, logger *zap.Logger, recorder UpstreamRecorder) *RecommendationService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	logger = logger.Named("recommend")
	logger.Debug("fallback templates loaded",
		zap.Int("count", templates.Len()),
		zap.String("names", templateNames(templates)))

	return &RecommendationService{
		client:    client,
		url:       url,
		templates: templates,
		logger:    logger,
		recorder:  recorder,
	}
}

type recommendPayload struct {
	Ingredients []string `json:"ingredients"`
}

// Recommend returns suggestions for ingredients. A failed, slow, malformed or
// empty upstream response produces the fallback set instead of an error.
func (s *RecommendationService) Recommend(ctx context.Context, ingredients []string) (*RecommendResult, error) {
	if ingredients == nil {
		ingredients = []string{}
	}

	recipes, err := s.fetch(ctx, ingredients)
	if err == nil {
		s.recorder.UpstreamCall(recommendService, OutcomeSuccess)
		s.logger.Debug("upstream recommendations", zap.Int("count", len(recipes)))
		return &RecommendResult{Recipes: recipes, Source: SourceUpstream}, nil
	}

	if !apperrors.Is(err, apperrors.CodeUpstreamUnavailable) {
		return nil, err
	}

	s.recorder.UpstreamCall(recommendService, OutcomeFallback)
	s.logger.Warn("recommendation service unavailable, using fallback", zap.Error(err))
	return &RecommendResult{
		Recipes: BuildFallback(ingredients, s.templates),
		Source:  SourceFallback,
	}, nil
}

func (s *RecommendationService) fetch(ctx context.Context, ingredients []string) ([]types.Recipe, error) {
	resp, err := s.client.PostJSON(ctx, s.url, recommendPayload{Ingredients: ingredients})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, apperrors.NewUpstreamError(recommendService, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	normalized, err := NormalizeRecipes(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(recommendService, err)
	}

	// Records without ingredients or instructions cannot be rendered
	recipes := normalized[:0]
	for _, r := range normalized {
		if len(r.Ingredients) > 0 && len(r.Instructions) > 0 {
			recipes = append(recipes, r)
		}
	}
	if dropped := len(normalized) - len(recipes); dropped > 0 {
		s.logger.Warn("dropped incomplete upstream records", zap.Int("dropped", dropped))
	}
	if len(recipes) == 0 {
		return nil, apperrors.NewUpstreamError(recommendService, fmt.Errorf("no recipes returned"))
	}
	return recipes, nil
}
