package types

import "strings"

// FallbackIDPrefix marks recipes synthesized locally instead of returned by
// the recommendation service.
const FallbackIDPrefix = "fallback-"

// Recipe is the normalized recipe record returned to clients
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tags         []string `json:"tags"`
	Degraded     bool     `json:"degraded"`
}

// IsFallback reports whether the recipe came from the fallback path. Older
// servers only set the id prefix, so both signals are honored.
func (r Recipe) IsFallback() bool {
	return r.Degraded || strings.HasPrefix(r.ID, FallbackIDPrefix)
}

// AnyFallback reports whether a response set was produced in degraded mode
func AnyFallback(recipes []Recipe) bool {
	for _, r := range recipes {
		if r.IsFallback() {
			return true
		}
	}
	return false
}

// RecipeTemplate is a canned recipe the fallback path derives suggestions from
type RecipeTemplate struct {
	Name         string   `json:"name" yaml:"name"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Tags         []string `json:"tags" yaml:"tags"`
}
