// Package pretty provides Lipgloss-based styled output utilities for the
// CLI: the node outline and the tag statistics table.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Outline components.
	NodeID  lipgloss.Style
	Element lipgloss.Style
	Data    lipgloss.Style

	// Table components.
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableTotal  lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		NodeID:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Element: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Data:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		TableHeader: lipgloss.NewStyle().Bold(true),
		TableRow:    lipgloss.NewStyle(),
		TableTotal:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		NodeID:      plain,
		Element:     plain,
		Data:        plain,
		TableHeader: plain,
		TableRow:    plain,
		TableTotal:  plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode is one of auto, always, never.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
