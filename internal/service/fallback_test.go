package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates(t *testing.T) {
	set := DefaultTemplates()
	require.Equal(t, 2, set.Len())

	all := set.All()
	assert.Equal(t, "Garlic Ginger Stir-fry", all[0].Name)
	assert.Equal(t, []string{"garlic", "ginger", "soy sauce", "oil", "vegetables"}, all[0].Ingredients)

	// Callers get copies
	all[0].Ingredients[0] = "changed"
	assert.Equal(t, "garlic", set.All()[0].Ingredients[0])
}

func TestParseTemplatesValidation(t *testing.T) {
	_, err := ParseTemplates([]byte(`templates: []`))
	assert.Error(t, err)

	_, err = ParseTemplates([]byte("templates:\n  - name: Soup\n    ingredients: [water]\n"))
	assert.ErrorContains(t, err, "instructions")

	_, err = ParseTemplates([]byte(`templates: [unclosed`))
	assert.Error(t, err)

	set, err := LoadTemplates([]byte("templates:\n  - name: Soup\n    ingredients: [water]\n    instructions: [Boil]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{}, set.All()[0].Tags)

	set, err = LoadTemplates(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestBuildFallback(t *testing.T) {
	recipes := BuildFallback([]string{"garlic", "chicken"}, DefaultTemplates())
	require.Len(t, recipes, 2)

	first := recipes[0]
	assert.Equal(t, "fallback-1", first.ID)
	assert.Equal(t, "Garlic Recipe 1", first.Name)
	assert.Equal(t, []string{"garlic", "chicken", "ginger", "soy sauce", "oil", "vegetables"}, first.Ingredients)
	assert.Equal(t, []string{"quick", "healthy", "asian"}, first.Tags)
	assert.True(t, first.Degraded)
	assert.NotEmpty(t, first.Instructions)

	second := recipes[1]
	assert.Equal(t, "fallback-2", second.ID)
	assert.Equal(t, "Garlic Recipe 2", second.Name)
	assert.Equal(t, []string{"garlic", "chicken", "salt", "pepper", "herbs", "main ingredient"}, second.Ingredients)
}

func TestBuildFallbackSupersetWithoutDuplicates(t *testing.T) {
	input := []string{"salt", "Garlic", "salt", "garlic"}
	for _, r := range BuildFallback(input, DefaultTemplates()) {
		seen := map[string]bool{}
		for _, ing := range r.Ingredients {
			assert.False(t, seen[ing], "duplicate %q in %s", ing, r.ID)
			seen[ing] = true
		}
		for _, ing := range input {
			assert.True(t, seen[ing], "missing %q in %s", ing, r.ID)
		}
	}
}

func TestBuildFallbackNames(t *testing.T) {
	assert.Equal(t, "Ingredient Recipe 1", BuildFallback(nil, DefaultTemplates())[0].Name)
	assert.Equal(t, "Ingredient Recipe 1", BuildFallback([]string{""}, DefaultTemplates())[0].Name)
	assert.Equal(t, "Émincé Recipe 1", BuildFallback([]string{"émincé"}, DefaultTemplates())[0].Name)
	assert.Equal(t, "1kg flour Recipe 1", BuildFallback([]string{"1kg flour"}, DefaultTemplates())[0].Name)
	assert.Equal(t, "Tofu Recipe 2", BuildFallback([]string{"tofu", "tofu", "rice"}, DefaultTemplates())[1].Name)
}
