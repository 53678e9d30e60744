package repl

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown for the help screen.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a terminal markdown renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders the markdown with the terminal's detected style.
func (r *GlamourRenderer) Render(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
