// Package theme provides the theme registry and the color palettes oceanic
// ships with.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme every registry starts with.
const DefaultName = "oceanic"

// Typography describes editor font settings carried alongside a palette.
type Typography struct {
	FontFamily string
	FontSize   int
	LineHeight float64
}

// Palette is the configuration payload stored in the registry.
// Colors are adaptive so the same palette works on light and dark terminals.
type Palette struct {
	DisplayName string

	// Base colors
	Primary   lipgloss.AdaptiveColor // Main accent (header bg, focused borders)
	Secondary lipgloss.AdaptiveColor // Labels, links
	Accent    lipgloss.AdaptiveColor // Highlights

	// Status colors
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Text colors
	Text           lipgloss.AdaptiveColor
	TextMuted      lipgloss.AdaptiveColor
	TextEmphasized lipgloss.AdaptiveColor

	// Background colors
	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // Selected rows
	BackgroundDarker    lipgloss.AdaptiveColor // Swatches, badges

	// Border colors
	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor

	Typography Typography
}

// PaletteRegistry is the registry type the app and CLI share.
type PaletteRegistry = Registry[Palette]

// Swatch pairs a role name with its color, in display order.
type Swatch struct {
	Role  string
	Color lipgloss.AdaptiveColor
}

// Swatches returns the palette's colors in a stable order for previews.
func (p Palette) Swatches() []Swatch {
	return []Swatch{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"error", p.Error},
		{"warning", p.Warning},
		{"success", p.Success},
		{"info", p.Info},
		{"text", p.Text},
		{"muted", p.TextMuted},
		{"background", p.Background},
	}
}
