package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipeai/backend/internal/service"
	"github.com/pageza/recipeai/backend/internal/types"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, cred types.Credential) (*types.Session, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ service.IAuthService = (*MockAuthService)(nil)
