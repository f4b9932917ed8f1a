package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipeai/backend/config"
	"github.com/pageza/recipeai/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(recommendURL, authURL string) *config.Config {
	return &config.Config{
		Environment:       config.Test,
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		AllowedOrigins:    []string{"*"},
		PingMessage:       "ping",
		RecommendURL:      recommendURL,
		AuthURL:           authURL,
		UpstreamTimeout:   time.Second,
		RateLimitRequests: 2,
		RateLimitWindow:   time.Hour,
	}
}

func unreachable(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew(t *testing.T) {
	srv := New(testConfig(unreachable(t), unreachable(t)), zaptest.NewLogger(t), nil, nil)
	require.NotNil(t, srv)

	w := get(srv.Handler(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(srv.Handler(), "/api/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ping"}`, w.Body.String())
}

func TestRecommendEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"Items":[{"id":{"S":"r1"},"name":{"S":"Tofu Bowl"},"ingredients":{"S":"tofu, rice"},"instructions":{"S":"Cook rice. Fry tofu"},"tags":{"S":"vegan"}}]}`)
	}))
	defer upstream.Close()

	srv := New(testConfig(upstream.URL, unreachable(t)), zaptest.NewLogger(t), nil, nil)

	w := post(srv.Handler(), "/api/recipes/recommend", `{"ingredients":["tofu"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "upstream", w.Header().Get("X-Recipe-Source"))

	var recipes []types.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, []string{"Cook rice", "Fry tofu"}, recipes[0].Instructions)
	assert.False(t, recipes[0].Degraded)
}

func TestRecommendFallbackEndToEnd(t *testing.T) {
	srv := New(testConfig(unreachable(t), unreachable(t)), zaptest.NewLogger(t), nil, nil)

	w := post(srv.Handler(), "/api/recipes/recommend", `{"ingredients":["chicken","garlic"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback", w.Header().Get("X-Recipe-Source"))

	var recipes []types.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 2)
	assert.Equal(t, "Chicken Recipe 1", recipes[0].Name)
	assert.True(t, recipes[1].Degraded)

	metrics := get(srv.Handler(), "/metrics").Body.String()
	assert.Contains(t, metrics, `upstream_calls_total{outcome="fallback",service="recommend"} 1`)
}

func TestLoginDemoEndToEnd(t *testing.T) {
	srv := New(testConfig(unreachable(t), unreachable(t)), zaptest.NewLogger(t), nil, nil)

	w := post(srv.Handler(), "/api/auth/login", `{"username":"demouser","password":"demo123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Login successful (demo mode)", response.Message)
	assert.Contains(t, response.Token, "demo-token-")

	w = post(srv.Handler(), "/api/auth/login", `{"username":"chef","password":"demo123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitedRecommend(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cfg := testConfig(unreachable(t), unreachable(t))
	cfg.RedisURL = "redis://" + mr.Addr()
	srv := New(cfg, zaptest.NewLogger(t), nil, client)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, post(srv.Handler(), "/api/recipes/recommend", `{"ingredients":["egg"]}`).Code)
	}
	w := post(srv.Handler(), "/api/recipes/recommend", `{"ingredients":["egg"]}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")

	// Login is never rate limited
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusUnauthorized, post(srv.Handler(), "/api/auth/login", `{"username":"a","password":"b"}`).Code)
	}
}

func TestStartAndShutdown(t *testing.T) {
	srv := New(testConfig(unreachable(t), unreachable(t)), zaptest.NewLogger(t), nil, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Give the listener a moment before shutting down
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
