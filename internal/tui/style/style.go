// Package style holds the lipgloss styles shared by seedrepo's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorDir colors a directory name
func ColorDir(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorBold renders text in bold
func ColorBold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// TreeGlyphs are the connectors drawn in front of tree entries
type TreeGlyphs struct {
	Branch string
	Last   string
	Pipe   string
	Blank  string
}

var (
	unicodeGlyphs = TreeGlyphs{Branch: "├── ", Last: "└── ", Pipe: "│   ", Blank: "    "}
	asciiGlyphs   = TreeGlyphs{Branch: "|-- ", Last: "`-- ", Pipe: "|   ", Blank: "    "}
)

// Glyphs returns box-drawing connectors, or plain ASCII ones when the
// terminal has no color support at all.
func Glyphs() TreeGlyphs {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}
