package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipeai/backend/internal/service"
)

// MockRecommendationService is a mock implementation of the recommendation service
type MockRecommendationService struct {
	mock.Mock
}

// Recommend mocks the Recommend method
func (m *MockRecommendationService) Recommend(ctx context.Context, ingredients []string) (*service.RecommendResult, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecommendResult), args.Error(1)
}

var _ service.IRecommendationService = (*MockRecommendationService)(nil)
