package ui

import (
	"fmt"
	"strings"
	"time"

	"oceanic/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// sampleCode is rendered in the preview pane so each palette can be judged
// on real syntax highlighting.
const sampleCode = "```go\n" +
	`// Switch themes and react to the change.
func apply(reg *theme.Registry[Palette], name string) bool {
	unsubscribe := reg.Subscribe(func(ev theme.Event[Palette]) error {
		fmt.Printf("%s -> %s\n", ev.Previous, ev.Name)
		return nil
	})
	defer unsubscribe()

	const retries = 3
	for i := 0; i < retries; i++ {
		if reg.SwitchTo(name) {
			return true
		}
	}
	return false
}
` + "```\n"

// View implements tea.Model.
func (m *App) View() string {
	name, palette := m.reg.Active()

	header := m.styles.Header.Width(m.width).Render(m.headerText(name, palette))

	listWidth := m.listWidth()
	previewWidth := m.width - listWidth - 4
	if previewWidth < 20 {
		previewWidth = 20
	}

	list := m.styles.Pane.Width(listWidth).Render(m.renderList(listWidth))
	preview := m.styles.Pane.Width(previewWidth).Render(m.renderPreview(palette, previewWidth-2))
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, preview)

	parts := []string{header, body}
	if line := m.statusLine(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *App) headerText(name string, p theme.Palette) string {
	text := "Oceanic themes · " + displayName(name, p)
	if m.version != "" {
		text += " · " + m.version
	}
	return text
}

func (m *App) listWidth() int {
	w := minListWidth
	for _, n := range m.names {
		if l := ansi.StringWidth(n) + 4; l > w {
			w = l
		}
	}
	if limit := m.width / 3; w > limit && limit >= minListWidth {
		w = limit
	}
	return w
}

func (m *App) renderList(width int) string {
	active := m.reg.ActiveName()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Themes"))
	for i, n := range m.names {
		b.WriteString("\n")
		marker := "  "
		if n == active {
			marker = m.styles.Active.Render("● ")
		}
		label := ansi.Truncate(n, width-2, "…")
		style := m.styles.Item
		if i == m.cursor {
			style = m.styles.Selected
		}
		b.WriteString(marker + style.Render(label))
	}
	return b.String()
}

// renderPreview renders the sample code and swatch table. The glamour output
// is cached until the active theme or the width changes.
func (m *App) renderPreview(p theme.Palette, width int) string {
	key := fmt.Sprintf("%s/%d/%s", m.reg.ActiveName(), width, m.outputFormat)
	if m.previewKey != key {
		render := buildMarkdownRenderer(m.outputFormat, width)
		m.preview = render(sampleCode)
		m.previewKey = key
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.DisplayName))
	if t := p.Typography; t.FontFamily != "" {
		b.WriteString("\n")
		font := fmt.Sprintf("%s · %dpx · line height %.1f", t.FontFamily, t.FontSize, t.LineHeight)
		b.WriteString(m.styles.Muted.Render(wordwrap.String(font, width)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.preview)
	b.WriteString("\n\n")
	b.WriteString(renderSwatches(p))
	return b.String()
}

func renderSwatches(p theme.Palette) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ROLE", "DARK", "LIGHT", "")
	for _, s := range p.Swatches() {
		t.Row(s.Role, s.Color.Dark, s.Color.Light, swatchStyle(s.Color).Render("    "))
	}
	return t.Render()
}

func (m *App) statusLine() string {
	if m.errText != "" {
		return m.styles.Error.Render(m.errText)
	}
	if m.toastVisible && m.toastText != "" {
		remaining := toastDuration - time.Since(m.toastStart)
		if remaining <= 0 {
			return ""
		}
		return m.styles.Toast.Render(m.toastText)
	}
	return ""
}
