package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks that the configuration can drive the gateway
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", "must be a number between 1 and 65535"})
	}

	for field, raw := range map[string]string{
		"RECOMMEND_URL": cfg.RecommendURL,
		"AUTH_URL":      cfg.AuthURL,
	} {
		if err := validateUpstreamURL(raw); err != nil {
			errs = append(errs, ValidationError{field, err.Error()})
		}
	}

	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, ValidationError{"UPSTREAM_TIMEOUT", "must be a positive duration"})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, ValidationError{"SHUTDOWN_TIMEOUT", "must be a positive duration"})
	}

	if cfg.RedisURL != "" && cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_WINDOW", "must be a positive duration when REDIS_URL is set"})
	}

	if strings.HasPrefix(cfg.FallbackTemplates, "s3://") {
		if _, _, err := parseS3URI(cfg.FallbackTemplates); err != nil {
			errs = append(errs, ValidationError{"FALLBACK_TEMPLATES", err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateUpstreamURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
