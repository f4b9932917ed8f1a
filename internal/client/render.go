package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns suggestions into terminal output
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a renderer. plain disables colors and styling, for
// pipes and tests.
func NewRenderer(plain bool, width int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if plain {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render renders s as styled Markdown
func (r *Renderer) Render(s *Suggestions) (string, error) {
	return r.term.Render(Markdown(s))
}

// Markdown formats suggestions as a Markdown document
func Markdown(s *Suggestions) string {
	var b strings.Builder

	if s.Degraded() {
		b.WriteString("> **Offline mode:** the recipe service is unavailable, showing template suggestions.\n\n")
	}
	if len(s.Recipes) == 0 {
		b.WriteString("_No recipes found._\n")
		return b.String()
	}

	for _, r := range s.Recipes {
		fmt.Fprintf(&b, "# %s\n\n", r.Name)
		if len(r.Tags) > 0 {
			fmt.Fprintf(&b, "_%s_\n\n", strings.Join(r.Tags, ", "))
		}

		b.WriteString("## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}

		b.WriteString("\n## Instructions\n\n")
		for i, step := range r.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}
	return b.String()
}
