package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultNotesWidth is the word-wrap column for rendered notes.
const DefaultNotesWidth = 80

// RenderNotes renders markdown for the terminal.
//
// style is a glamour standard style name ("dark", "light", "notty",
// "ascii"); an empty style means "notty", which emits no escape codes.
func RenderNotes(markdown, style string, width int) (string, error) {
	if style == "" {
		style = "notty"
	}
	if width <= 0 {
		width = DefaultNotesWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("notes renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render notes: %w", err)
	}
	return out, nil
}
