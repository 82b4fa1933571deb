package theme

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Oceanic typography applied to the editor by the font sync.
var oceanicTypography = Typography{
	FontFamily: "Source Code Pro, Menlo, Monaco, 'Courier New', monospace",
	FontSize:   18,
	LineHeight: 1.6,
}

// Oceanic returns the default palette.
func Oceanic() Palette {
	return Palette{
		DisplayName:         "Oceanic Custom",
		Primary:             ac("#0f8fb0", "#5CCFE6"),
		Secondary:           ac("#39adb5", "#89DDFF"),
		Accent:              ac("#f4511e", "#FF8F40"),
		Error:               ac("#e53935", "#f07178"),
		Warning:             ac("#ffb300", "#FFCB6B"),
		Success:             ac("#91b859", "#BAE67E"),
		Info:                ac("#6182b8", "#82AAFF"),
		Text:                ac("#263238", "#eeffff"),
		TextMuted:           ac("#90a4ae", "#546e7a"),
		TextEmphasized:      ac("#000000", "#C792EA"),
		Background:          ac("#fafafa", "#263238"),
		BackgroundSecondary: ac("#f5f5f5", "#314549"),
		BackgroundDarker:    ac("#e7e7e8", "#1e272c"),
		BorderNormal:        ac("#e0e0e0", "#37474f"),
		BorderFocused:       ac("#0f8fb0", "#5CCFE6"),
		BorderDim:           ac("#eeeeee", "#1e272c"),
		Typography:          oceanicTypography,
	}
}

// Palenight palette, https://github.com/whizkydee/vscode-palenight-theme
func Palenight() Palette {
	return Palette{
		DisplayName:         "Palenight",
		Primary:             ac("#4976eb", "#82aaff"),
		Secondary:           ac("#a854f2", "#c792ea"),
		Accent:              ac("#00acc1", "#89ddff"),
		Error:               ac("#e53935", "#f07178"),
		Warning:             ac("#ffb300", "#ffcb6b"),
		Success:             ac("#91b859", "#c3e88d"),
		Info:                ac("#f4511e", "#f78c6c"),
		Text:                ac("#292d3e", "#a6accd"),
		TextMuted:           ac("#8796b0", "#676e95"),
		TextEmphasized:      ac("#000000", "#bfc7d5"),
		Background:          ac("#fafafa", "#292d3e"),
		BackgroundSecondary: ac("#f5f5f5", "#1e2132"),
		BackgroundDarker:    ac("#e7e7e8", "#32364a"),
		BorderNormal:        ac("#e0e0e0", "#32364a"),
		BorderFocused:       ac("#4976eb", "#82aaff"),
		BorderDim:           ac("#eeeeee", "#1e2132"),
	}
}

// Material palette, https://github.com/material-theme/vsc-material-theme
func Material() Palette {
	return Palette{
		DisplayName:         "Material",
		Primary:             ac("#6182b8", "#82aaff"),
		Secondary:           ac("#7c4dff", "#c792ea"),
		Accent:              ac("#39adb5", "#89ddff"),
		Error:               ac("#e53935", "#f07178"),
		Warning:             ac("#ffb300", "#ffcb6b"),
		Success:             ac("#91b859", "#c3e88d"),
		Info:                ac("#f4511e", "#ffcb6b"),
		Text:                ac("#263238", "#eeffff"),
		TextMuted:           ac("#90a4ae", "#546e7a"),
		TextEmphasized:      ac("#000000", "#eeffff"),
		Background:          ac("#fafafa", "#263238"),
		BackgroundSecondary: ac("#f5f5f5", "#37474f"),
		BackgroundDarker:    ac("#e7e7e8", "#1e272c"),
		BorderNormal:        ac("#e0e0e0", "#37474f"),
		BorderFocused:       ac("#6182b8", "#82aaff"),
		BorderDim:           ac("#eeeeee", "#1e272c"),
	}
}

// Nord palette, https://www.nordtheme.com
func Nord() Palette {
	return Palette{
		DisplayName:         "Nord",
		Primary:             ac("#5E81AC", "#88C0D0"),
		Secondary:           ac("#81A1C1", "#81A1C1"),
		Accent:              ac("#8FBCBB", "#8FBCBB"),
		Error:               ac("#BF616A", "#BF616A"),
		Warning:             ac("#D08770", "#D08770"),
		Success:             ac("#A3BE8C", "#A3BE8C"),
		Info:                ac("#5E81AC", "#88C0D0"),
		Text:                ac("#2E3440", "#ECEFF4"),
		TextMuted:           ac("#3B4252", "#8B95A7"),
		TextEmphasized:      ac("#000000", "#ECEFF4"),
		Background:          ac("#ECEFF4", "#2E3440"),
		BackgroundSecondary: ac("#E5E9F0", "#3B4252"),
		BackgroundDarker:    ac("#D8DEE9", "#434C5E"),
		BorderNormal:        ac("#4C566A", "#434C5E"),
		BorderFocused:       ac("#434C5E", "#4C566A"),
		BorderDim:           ac("#4C566A", "#434C5E"),
	}
}

// Dracula palette, https://draculatheme.com
func Dracula() Palette {
	return Palette{
		DisplayName:         "Dracula",
		Primary:             ac("#7e57c2", "#bd93f9"),
		Secondary:           ac("#0097a7", "#8be9fd"),
		Accent:              ac("#f9a825", "#f1fa8c"),
		Error:               ac("#d32f2f", "#ff5555"),
		Warning:             ac("#ef6c00", "#ffb86c"),
		Success:             ac("#388e3c", "#50fa7b"),
		Info:                ac("#1976d2", "#8be9fd"),
		Text:                ac("#212121", "#f8f8f2"),
		TextMuted:           ac("#757575", "#6272a4"),
		TextEmphasized:      ac("#000000", "#f8f8f2"),
		Background:          ac("#ffffff", "#282a36"),
		BackgroundSecondary: ac("#e0e0e0", "#44475a"),
		BackgroundDarker:    ac("#bdbdbd", "#1e1f29"),
		BorderNormal:        ac("#bdbdbd", "#6272a4"),
		BorderFocused:       ac("#7e57c2", "#bd93f9"),
		BorderDim:           ac("#e0e0e0", "#44475a"),
	}
}

// TokyoNight palette (moon variant), https://github.com/folke/tokyonight.nvim
func TokyoNight() Palette {
	return Palette{
		DisplayName:         "Tokyo Night",
		Primary:             ac("#2e7de9", "#82aaff"),
		Secondary:           ac("#9854f1", "#c099ff"),
		Accent:              ac("#b15c00", "#ff966c"),
		Error:               ac("#f52a65", "#ff757f"),
		Warning:             ac("#b15c00", "#ff966c"),
		Success:             ac("#587539", "#c3e88d"),
		Info:                ac("#0db9d7", "#7dcfff"),
		Text:                ac("#3760bf", "#c8d3f5"),
		TextMuted:           ac("#848cb5", "#636da6"),
		TextEmphasized:      ac("#8c6c3e", "#ffc777"),
		Background:          ac("#e1e2e7", "#222436"),
		BackgroundSecondary: ac("#c8c9ce", "#2f334d"),
		BackgroundDarker:    ac("#d5d6db", "#1e2030"),
		BorderNormal:        ac("#a8aecb", "#3b4261"),
		BorderFocused:       ac("#2e7de9", "#82aaff"),
		BorderDim:           ac("#c8c9ce", "#292e42"),
	}
}

// Builtin pairs a registry name with its palette constructor.
type Builtin struct {
	Name    string
	Palette func() Palette
}

// Builtins lists the shipped palettes in registration order. Oceanic is first.
var Builtins = []Builtin{
	{DefaultName, Oceanic},
	{"palenight", Palenight},
	{"material", Material},
	{"nord", Nord},
	{"dracula", Dracula},
	{"tokyonight", TokyoNight},
}

// NewDefault returns a registry with every built-in palette registered and
// oceanic active. Registration happens before any observer can subscribe, so
// no events are emitted.
func NewDefault(opts ...Option[Palette]) *PaletteRegistry {
	reg := NewRegistry(DefaultName, Oceanic(), opts...)
	for _, b := range Builtins[1:] {
		reg.Register(b.Name, b.Palette())
	}
	return reg
}
