// Package editor writes theme typography into the editor configuration.
package editor

import (
	"fmt"
	"strings"

	"oceanic/internal/config"
	"oceanic/internal/debug"
	"oceanic/internal/ui/theme"
)

// ApplyFonts writes t as the editor font settings via save. A typography
// with no font family is treated as "nothing to apply".
func ApplyFonts(t theme.Typography, save func(config.FontSettings) error) error {
	if strings.TrimSpace(t.FontFamily) == "" {
		return nil
	}
	fonts := config.FontSettings{
		FontFamily: t.FontFamily,
		FontSize:   t.FontSize,
		LineHeight: t.LineHeight,
	}
	if err := save(fonts); err != nil {
		return fmt.Errorf("apply font settings: %w", err)
	}
	debug.Logf("editor: applied fonts family=%q size=%d line-height=%.2f", fonts.FontFamily, fonts.FontSize, fonts.LineHeight)
	return nil
}

// FontSync is a registry observer that applies a theme's typography when
// that theme becomes active and auto-apply is enabled.
type FontSync struct {
	// Theme whose activation triggers the write.
	Theme string
	// Enabled is consulted on every switch so config changes take effect
	// without resubscribing.
	Enabled func() bool
	Save    func(config.FontSettings) error
}

// NewFontSync returns a FontSync for the default theme driven by the
// apply-font-settings config key.
func NewFontSync() *FontSync {
	return &FontSync{
		Theme: theme.DefaultName,
		Enabled: func() bool {
			return config.GetBool(config.KeyApplyFontSettings)
		},
		Save: config.SaveEditorFonts,
	}
}

// Observe implements theme.Observer.
func (f *FontSync) Observe(ev theme.Event[theme.Palette]) error {
	if ev.Kind != theme.ThemeChanged || ev.Name != f.Theme {
		return nil
	}
	if f.Enabled != nil && !f.Enabled() {
		return nil
	}
	return ApplyFonts(ev.Config.Typography, f.Save)
}
