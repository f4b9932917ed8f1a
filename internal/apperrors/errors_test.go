package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("ingredients must be an array").StatusCode())
	assert.Equal(t, http.StatusUnauthorized, NewInvalidCredentialsError().StatusCode())
	assert.Equal(t, http.StatusTooManyRequests, NewTooManyRequestsError("").StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, NewUpstreamError("recommend", errors.New("boom")).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError(nil).StatusCode())
}

func TestIsAndFrom(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := fmt.Errorf("recommend: %w", NewUpstreamError("recommend", cause))

	assert.True(t, Is(wrapped, CodeUpstreamUnavailable))
	assert.False(t, Is(wrapped, CodeValidationFailed))
	assert.ErrorIs(t, wrapped, cause)

	assert.Equal(t, CodeUpstreamUnavailable, From(wrapped).Code)
	assert.Equal(t, CodeInternal, From(errors.New("plain")).Code)
	assert.Nil(t, From(nil))
}

func TestToErrorResponseHidesCollaboratorDetails(t *testing.T) {
	resp := ToErrorResponse(NewUpstreamError("https://auth.internal/login", errors.New("timeout")), "req-1")
	assert.Empty(t, resp.Error.Details)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	resp = ToErrorResponse(NewValidationError("ingredients is required"), "")
	assert.Equal(t, "ingredients is required", resp.Error.Details)
}
