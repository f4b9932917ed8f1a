// Package client is a small Go client for the RecipeAI HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pageza/recipeai/backend/internal/types"
)

// DefaultServer is the address the CLI talks to when none is given
const DefaultServer = "http://localhost:8080"

// Client calls the RecipeAI API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Suggestions is the result of a recommend call
type Suggestions struct {
	Recipes []types.Recipe
	// Source is "upstream" or "fallback" as reported by the server
	Source string
}

// Degraded reports whether the server answered from its fallback templates
func (s *Suggestions) Degraded() bool {
	return s.Source == "fallback" || types.AnyFallback(s.Recipes)
}

// Recommend asks the server for recipes using ingredients
func (c *Client) Recommend(ctx context.Context, ingredients *types.IngredientList) (*Suggestions, error) {
	var recipes []types.Recipe
	header, err := c.do(ctx, http.MethodPost, "/api/recipes/recommend",
		map[string][]string{"ingredients": ingredients.Items()}, &recipes)
	if err != nil {
		return nil, err
	}
	return &Suggestions{Recipes: recipes, Source: header.Get("X-Recipe-Source")}, nil
}

// Login exchanges a username and password for a session token
func (c *Client) Login(ctx context.Context, username, password string) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	cred := types.Credential{Username: username, Password: password}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", cred, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the session
func (c *Client) Logout(ctx context.Context) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping returns the server's ping message
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) (http.Header, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.Header, nil
}

// errorMessage pulls a readable message out of either error body shape
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
			Details string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return strings.TrimSpace(string(data))
	}
	switch {
	case body.Message != "":
		return body.Message
	case body.Error.Details != "":
		return body.Error.Message + ": " + body.Error.Details
	default:
		return body.Error.Message
	}
}
