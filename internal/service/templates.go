package service

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pageza/recipeai/backend/internal/types"
)

//go:embed templates/fallback.yaml
var defaultTemplatesYAML []byte

// TemplateSet is an immutable, validated set of fallback templates
type TemplateSet struct {
	templates []types.RecipeTemplate
}

type templateDocument struct {
	Templates []types.RecipeTemplate `yaml:"templates"`
}

// DefaultTemplates returns the built-in template set
func DefaultTemplates() *TemplateSet {
	set, err := ParseTemplates(defaultTemplatesYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in fallback templates are invalid: %v", err))
	}
	return set
}

// ParseTemplates decodes and validates a YAML template document
func ParseTemplates(data []byte) (*TemplateSet, error) {
	var doc templateDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("template document has no templates")
	}
	for i, t := range doc.Templates {
		switch {
		case t.Name == "":
			return nil, fmt.Errorf("template %d: name is required", i+1)
		case len(t.Ingredients) == 0:
			return nil, fmt.Errorf("template %d (%s): ingredients are required", i+1, t.Name)
		case len(t.Instructions) == 0:
			return nil, fmt.Errorf("template %d (%s): instructions are required", i+1, t.Name)
		}
	}
	return &TemplateSet{templates: doc.Templates}, nil
}

// LoadTemplates parses data, or returns the built-in set when data is empty
func LoadTemplates(data []byte) (*TemplateSet, error) {
	if len(data) == 0 {
		return DefaultTemplates(), nil
	}
	return ParseTemplates(data)
}

func (s *TemplateSet) Len() int {
	return len(s.templates)
}

// All returns a deep copy of the templates in order
func (s *TemplateSet) All() []types.RecipeTemplate {
	out := make([]types.RecipeTemplate, len(s.templates))
	for i, t := range s.templates {
		out[i] = types.RecipeTemplate{
			Name:         t.Name,
			Ingredients:  append([]string(nil), t.Ingredients...),
			Instructions: append([]string(nil), t.Instructions...),
			Tags:         append([]string{}, t.Tags...),
		}
	}
	return out
}
