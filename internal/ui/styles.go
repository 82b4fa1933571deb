package ui

import (
	"strings"

	"oceanic/internal/ui/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Styles holds every lipgloss style the picker renders with. It is rebuilt
// whenever the active palette changes.
type Styles struct {
	Header   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Active   lipgloss.Style
	Muted    lipgloss.Style
	Pane     lipgloss.Style
	Title    lipgloss.Style
	Toast    lipgloss.Style
	Error    lipgloss.Style
}

func newStyles(p theme.Palette) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(p.Text),
		Selected: lipgloss.NewStyle().
			Foreground(p.TextEmphasized).
			Background(p.BackgroundSecondary).
			Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BorderNormal).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Toast: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
	}
}

func swatchStyle(c lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Background(c).Foreground(c)
}

// buildMarkdownRenderer returns a markdown renderer for the given style
// (rich, dark, light, plain). Plain, or any glamour failure, falls back to
// word wrapping the raw text.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "plain":
		return fallback
	case "", "rich":
		style = "dark"
		if !lipgloss.HasDarkBackground() {
			style = "light"
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
