package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pageza/recipeai/backend/internal/types"
)

// BuildFallback derives one degraded recipe per template from the user's
// ingredients. The result depends only on its inputs.
func BuildFallback(ingredients []string, templates *TemplateSet) []types.Recipe {
	user := types.Dedupe(ingredients)
	lead := "Ingredient"
	if len(user) > 0 && user[0] != "" {
		lead = capitalize(user[0])
	}

	all := templates.All()
	recipes := make([]types.Recipe, 0, len(all))
	for i, tmpl := range all {
		merged := append([]string{}, user...)
		for _, ing := range tmpl.Ingredients {
			if !contains(merged, ing) {
				merged = append(merged, ing)
			}
		}

		recipes = append(recipes, types.Recipe{
			ID:           fmt.Sprintf("%s%d", types.FallbackIDPrefix, i+1),
			Name:         fmt.Sprintf("%s Recipe %d", lead, i+1),
			Ingredients:  merged,
			Instructions: tmpl.Instructions,
			Tags:         tmpl.Tags,
			Degraded:     true,
		})
	}
	return recipes
}

// capitalize upper-cases the first rune and leaves the rest untouched
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// templateNames is used in log fields
func templateNames(set *TemplateSet) string {
	names := make([]string, 0, set.Len())
	for _, t := range set.All() {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}
