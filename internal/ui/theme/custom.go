package theme

import (
	"strings"

	"oceanic/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// FromSpec builds a palette from a config-declared theme. Fields the spec
// leaves empty are inherited from base. Unknown color roles are ignored.
func FromSpec(spec config.ThemeSpec, base Palette) Palette {
	p := base
	if spec.DisplayName != "" {
		p.DisplayName = spec.DisplayName
	}
	for role, c := range spec.Colors {
		if slot := p.slot(role); slot != nil {
			*slot = mergeColor(*slot, c)
		}
	}
	if spec.FontFamily != "" {
		p.Typography.FontFamily = spec.FontFamily
	}
	if spec.FontSize > 0 {
		p.Typography.FontSize = spec.FontSize
	}
	if spec.LineHeight > 0 {
		p.Typography.LineHeight = spec.LineHeight
	}
	return p
}

// RegisterSpecs registers config-declared themes in the order given. A spec
// naming an unknown base inherits from the default palette; a spec sharing a
// built-in's name replaces it.
func RegisterSpecs(reg *PaletteRegistry, specs []config.NamedThemeSpec) {
	for _, s := range specs {
		base, ok := reg.Lookup(strings.ToLower(strings.TrimSpace(s.Base)))
		if !ok {
			base, _ = reg.Lookup(DefaultName)
		}
		if s.Base == "" {
			if existing, found := reg.Lookup(s.Name); found {
				base = existing
			}
		}
		reg.Register(s.Name, FromSpec(s.ThemeSpec, base))
	}
}

func mergeColor(cur lipgloss.AdaptiveColor, c config.ColorSpec) lipgloss.AdaptiveColor {
	switch {
	case c.Light != "" && c.Dark != "":
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	case c.Light != "":
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
	case c.Dark != "":
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	}
	return cur
}

func (p *Palette) slot(role string) *lipgloss.AdaptiveColor {
	switch strings.ToLower(strings.ReplaceAll(role, "_", "-")) {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "accent":
		return &p.Accent
	case "error":
		return &p.Error
	case "warning":
		return &p.Warning
	case "success":
		return &p.Success
	case "info":
		return &p.Info
	case "text":
		return &p.Text
	case "text-muted", "muted":
		return &p.TextMuted
	case "text-emphasized":
		return &p.TextEmphasized
	case "background":
		return &p.Background
	case "background-secondary":
		return &p.BackgroundSecondary
	case "background-darker":
		return &p.BackgroundDarker
	case "border-normal", "border":
		return &p.BorderNormal
	case "border-focused":
		return &p.BorderFocused
	case "border-dim":
		return &p.BorderDim
	}
	return nil
}
