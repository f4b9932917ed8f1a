package service

import (
	"context"

	"github.com/pageza/recipeai/backend/internal/types"
)

// Source tells where a recommendation set came from
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceFallback Source = "fallback"
)

// RecommendResult is a normalized recommendation set
type RecommendResult struct {
	Recipes []types.Recipe
	Source  Source
}

// IRecommendationService produces recipe suggestions for an ingredient list.
// Upstream faults are absorbed into a fallback result; a returned error is
// always an internal fault.
type IRecommendationService interface {
	Recommend(ctx context.Context, ingredients []string) (*RecommendResult, error)
}

// IAuthService forwards login requests to the identity service
type IAuthService interface {
	Login(ctx context.Context, cred types.Credential) (*types.Session, error)
	Logout(ctx context.Context) error
}

// UpstreamRecorder receives the outcome of every upstream call
type UpstreamRecorder interface {
	UpstreamCall(service, outcome string)
}

// Outcomes reported to UpstreamRecorder
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeRejected = "rejected"
	OutcomeDemo     = "demo"
)

type nopRecorder struct{}

func (nopRecorder) UpstreamCall(string, string) {}
