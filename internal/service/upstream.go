package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pageza/recipeai/backend/internal/apperrors"
)

// maxUpstreamBody caps how much of a remote response is read into memory
const maxUpstreamBody = 1 << 20

// UpstreamClient posts JSON to the remote services. Every call is bounded by
// the same timeout and is detached from the caller's cancellation.
type UpstreamClient struct {
	http    *http.Client
	timeout time.Duration
	apiKey  string
}

// UpstreamResponse is a fully read remote response
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status
func (r *UpstreamResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewUpstreamClient creates a client with an instrumented transport.
// apiKey is sent as x-api-key when non-empty.
func NewUpstreamClient(timeout time.Duration, apiKey string) *UpstreamClient {
	return &UpstreamClient{
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		timeout: timeout,
		apiKey:  apiKey,
	}
}

// PostJSON sends payload to url. Transport failures and timeouts come back as
// CodeUpstreamUnavailable errors; any HTTP status is returned as a response.
func (c *UpstreamClient) PostJSON(ctx context.Context, url string, payload any) (*UpstreamResponse, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to marshal request: %w", err))
	}

	// Client disconnects must not abort the remote call, only the timeout does
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(url, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, apperrors.NewUpstreamError(url, fmt.Errorf("failed to read response: %w", err))
	}

	return &UpstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
