package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientList(t *testing.T) {
	l := NewIngredientList("garlic", " garlic ", "Garlic", "", "   ")
	assert.Equal(t, []string{"garlic", "Garlic"}, l.Items())

	assert.True(t, l.Add("ginger"))
	assert.False(t, l.Add("ginger"))
	assert.Equal(t, 3, l.Len())

	assert.True(t, l.Remove("garlic"))
	assert.False(t, l.Remove("garlic"))
	assert.Equal(t, []string{"Garlic", "ginger"}, l.Items())

	items := l.Items()
	items[0] = "mutated"
	assert.True(t, l.Contains("Garlic"))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "A"}, Dedupe([]string{"a", "b", "a", "A", "b"}))
	assert.Empty(t, Dedupe(nil))
}

func TestRecipeIsFallback(t *testing.T) {
	assert.True(t, Recipe{ID: "fallback-1"}.IsFallback())
	assert.True(t, Recipe{ID: "7", Degraded: true}.IsFallback())
	assert.False(t, Recipe{ID: "7"}.IsFallback())

	assert.True(t, AnyFallback([]Recipe{{ID: "1"}, {ID: "fallback-2"}}))
	assert.False(t, AnyFallback([]Recipe{{ID: "1"}}))
}

func TestRecommendRequestIngredientValues(t *testing.T) {
	str := func(s string) *string { return &s }

	_, ok := RecommendRequest{}.IngredientValues()
	assert.False(t, ok)

	items := []*string{str("tofu"), nil}
	_, ok = RecommendRequest{Ingredients: &items}.IngredientValues()
	assert.False(t, ok)

	items = []*string{str(" tofu "), str(""), str("rice")}
	values, ok := RecommendRequest{Ingredients: &items}.IngredientValues()
	assert.True(t, ok)
	assert.Equal(t, []string{"tofu", "rice"}, values)

	items = []*string{}
	values, ok = RecommendRequest{Ingredients: &items}.IngredientValues()
	assert.True(t, ok)
	assert.Equal(t, []string{}, values)
}

func TestLoginRequestCredential(t *testing.T) {
	req := LoginRequest{Username: "demouser", Password: "demo123", Email: "ignored@example.com"}
	assert.Equal(t, Credential{Username: "demouser", Password: "demo123"}, req.Credential())
}
