package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oceanic/internal/config"
	"oceanic/internal/debug"
	"oceanic/internal/ui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minListWidth  = 14
)

// ErrNoRegistry is returned by NewApp when no registry is supplied.
var ErrNoRegistry = errors.New("theme registry is required")

// Config configures the picker.
type Config struct {
	Registry *theme.PaletteRegistry
	// OutputFormat selects the preview renderer (rich, dark, light, plain).
	OutputFormat string
	// PersistTheme saves each applied theme through SaveTheme.
	PersistTheme bool
	Version      string

	// Hooks, overridable in tests.
	SaveTheme     func(name string) error
	CopyClipboard func(text string) error
}

// App is the Bubble Tea model for the theme picker. It subscribes to the
// registry so switches made anywhere (keys, other observers, the CLI) are
// reflected in the view.
type App struct {
	reg   *theme.PaletteRegistry
	keys  KeyMap
	help  help.Model
	names []string

	cursor   int
	width    int
	height   int
	showHelp bool

	styles       Styles
	outputFormat string
	preview      string
	previewKey   string

	toastText    string
	toastStart   time.Time
	toastVisible bool
	errText      string

	persist     bool
	saveTheme   func(string) error
	copyText    func(string) error
	version     string
	unsubscribe func()
}

// NewApp builds the picker around cfg.Registry and subscribes to it.
// Call Close to drop the subscription.
func NewApp(cfg Config) (*App, error) {
	if cfg.Registry == nil {
		return nil, ErrNoRegistry
	}
	m := &App{
		reg:          cfg.Registry,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		width:        defaultWidth,
		height:       defaultHeight,
		outputFormat: cfg.OutputFormat,
		persist:      cfg.PersistTheme,
		saveTheme:    cfg.SaveTheme,
		copyText:     cfg.CopyClipboard,
		version:      cfg.Version,
	}
	if m.saveTheme == nil {
		m.saveTheme = config.SaveTheme
	}
	if m.copyText == nil {
		m.copyText = clipboard.WriteAll
	}

	m.names = m.reg.Names()
	active, palette := m.reg.Active()
	m.cursor = m.indexOf(active)
	m.styles = newStyles(palette)
	m.unsubscribe = m.reg.Subscribe(m.onThemeEvent)
	return m, nil
}

// Close drops the registry subscription. Safe to call more than once.
func (m *App) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		if !m.toastVisible {
			return m, nil
		}
		if time.Since(m.toastStart) >= toastDuration {
			m.toastVisible = false
			return m, nil
		}
		return m, scheduleToastTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.names) - 1
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Enter):
		return m.applySelected()
	case key.Matches(msg, m.keys.Next):
		m.reg.Cycle(true)
		return m, scheduleToastTick()
	case key.Matches(msg, m.keys.Prev):
		m.reg.Cycle(false)
		return m, scheduleToastTick()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPrimary()
	}
	return m, nil
}

// applySelected switches the registry to the highlighted theme. The view
// itself is updated by onThemeEvent.
func (m *App) applySelected() (tea.Model, tea.Cmd) {
	if len(m.names) == 0 {
		return m, nil
	}
	name := m.names[m.cursor]
	if !m.reg.SwitchTo(name) {
		m.errText = fmt.Sprintf("Theme %q not found", name)
		return m, nil
	}
	return m, scheduleToastTick()
}

func (m *App) copyPrimary() (tea.Model, tea.Cmd) {
	_, p := m.reg.Active()
	hex := p.Primary.Dark
	if err := m.copyText(hex); err != nil {
		debug.Logf("ui: copy primary color: %v", err)
		m.errText = "Clipboard unavailable"
		return m, nil
	}
	m.showToast("Copied " + hex)
	return m, scheduleToastTick()
}

// onThemeEvent is the picker's registry observer.
func (m *App) onThemeEvent(ev theme.Event[theme.Palette]) error {
	switch ev.Kind {
	case theme.ThemeAdded:
		selected := ""
		if m.cursor < len(m.names) {
			selected = m.names[m.cursor]
		}
		m.names = m.reg.Names()
		m.cursor = m.indexOf(selected)
		m.showToast("Added " + displayName(ev.Name, ev.Config))
		if ev.Name == m.reg.ActiveName() {
			m.styles = newStyles(ev.Config)
			m.previewKey = ""
		}

	case theme.ThemeChanged:
		m.errText = ""
		m.styles = newStyles(ev.Config)
		m.previewKey = ""
		m.cursor = m.indexOf(ev.Name)
		m.showToast(fmt.Sprintf("Theme: %s", displayName(ev.Name, ev.Config)))
		if m.persist {
			if err := m.saveTheme(ev.Name); err != nil {
				m.errText = "Could not save theme"
				return fmt.Errorf("save theme %q: %w", ev.Name, err)
			}
		}
	}
	return nil
}

func (m *App) showToast(text string) {
	m.toastText = text
	m.toastStart = time.Now()
	m.toastVisible = true
}

func (m *App) indexOf(name string) int {
	for i, n := range m.names {
		if n == name {
			return i
		}
	}
	return 0
}

func displayName(name string, p theme.Palette) string {
	if strings.TrimSpace(p.DisplayName) != "" {
		return p.DisplayName
	}
	return name
}
