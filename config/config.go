package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the gateway
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Ping endpoint message
	PingMessage string

	// Upstream services
	RecommendURL    string
	AuthURL         string
	UpstreamTimeout time.Duration
	UpstreamAPIKey  string

	// Fallback templates source: empty for the built-in set, a file path, or s3://bucket/key
	FallbackTemplates string
	AWSRegion         string

	// Redis configuration (rate limiting is disabled when RedisURL is empty)
	RedisURL          string
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RateLimitEnabled reports whether a Redis backed rate limiter should be installed
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != "" && c.RateLimitRequests > 0
}

// LoadConfig reads an optional .env file, then environment variables, and
// validates the result.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Environment:       GetEnvironment(),
		ServerHost:        v.GetString("SERVER_HOST"),
		ServerPort:        v.GetString("SERVER_PORT"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		AllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PingMessage:       v.GetString("PING_MESSAGE"),
		RecommendURL:      v.GetString("RECOMMEND_URL"),
		AuthURL:           v.GetString("AUTH_URL"),
		UpstreamTimeout:   v.GetDuration("UPSTREAM_TIMEOUT"),
		UpstreamAPIKey:    v.GetString("UPSTREAM_API_KEY"),
		FallbackTemplates: v.GetString("FALLBACK_TEMPLATES"),
		AWSRegion:         v.GetString("AWS_REGION"),
		RedisURL:          v.GetString("REDIS_URL"),
		RateLimitRequests: v.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
	}

	// The API key may be mounted as a Docker secret instead of an env var
	if cfg.UpstreamAPIKey == "" {
		cfg.UpstreamAPIKey = readSecret("upstream_api_key")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("PING_MESSAGE", "ping")
	v.SetDefault("RECOMMEND_URL", "https://t34tfhi733.execute-api.ap-southeast-2.amazonaws.com/prod/recommend")
	v.SetDefault("AUTH_URL", "https://0ectiuhd8a.execute-api.ap-southeast-2.amazonaws.com/login")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("AWS_REGION", "ap-southeast-2")
	v.SetDefault("RATE_LIMIT_REQUESTS", 30)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")

	// Production logs are JSON, local development is easier to read as console output
	if GetEnvironment() == Development {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
	} else {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
