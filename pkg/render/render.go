// Package render formats markdown answers for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 80

// Markdown renders markdown with a glamour terminal renderer.
type Markdown struct {
	r *glamour.TermRenderer
}

// New builds a renderer. An empty style picks one from the terminal
// background; width <= 0 uses 80 columns.
func New(style string, width int) (*Markdown, error) {
	if width <= 0 {
		width = defaultWidth
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style = strings.TrimSpace(style); style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Markdown{r: r}, nil
}

// Render returns text formatted for the terminal, or text unchanged if
// rendering fails.
func (m *Markdown) Render(text string) string {
	if m == nil || m.r == nil {
		return text
	}
	out, err := m.r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
