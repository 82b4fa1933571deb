package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"oceanic/internal/config"
	"oceanic/internal/debug"
	"oceanic/internal/editor"
	apperrors "oceanic/internal/errors"
	"oceanic/internal/ui"
	"oceanic/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.oceanic/debug.log")
	listFlag := flag.Bool("list", false, "List registered themes and exit")
	applyFontsFlag := flag.Bool("apply-fonts", false, "Write the Oceanic font settings to the editor config and exit")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Theme to activate on startup")
	outputFormatFlag := flag.String("output-format", config.GetString(config.KeyOutputFormat), "Preview markdown style (rich, dark, light, plain)")
	persistFlag := flag.Bool("persist-theme", config.GetBool(config.KeyPersistTheme), "Save the applied theme to the config file")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	opts := computeRuntimeOptions(runtimeFlags{
		theme:        themeFlag,
		outputFormat: outputFormatFlag,
		persistTheme: persistFlag,
	}, visited)
	opts.debug = *debugFlag
	opts.list = *listFlag
	opts.applyFonts = *applyFontsFlag

	if err := debug.Init(opts.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	reportDebugLog(os.Stderr)

	err := run(opts, os.Stdout, os.Stderr, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	})
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// reportDebugLog tells the user where the debug log is being written.
func reportDebugLog(w io.Writer) {
	if !debug.Enabled() {
		return
	}
	if path, err := debug.GetLogPath(); err == nil {
		fmt.Fprintf(w, "Debug log: %s\n", path)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// run builds the registry and then either lists themes, applies fonts, or
// starts the picker.
func run(opts runtimeOptions, stdout, stderr io.Writer, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	reg, err := buildRegistry(opts.theme, stderr)
	if err != nil {
		return err
	}

	switch {
	case opts.list:
		printThemes(stdout, reg)
		return nil
	case opts.applyFonts:
		// Always the Oceanic fonts, whichever theme is active.
		p, _ := reg.Lookup(theme.DefaultName)
		if err := editor.ApplyFonts(p.Typography, config.SaveEditorFonts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Applied %s font settings\n", p.DisplayName)
		return nil
	}

	// Subscribed after the startup selection so launching with the default
	// theme does not rewrite the editor config.
	unsubscribe := reg.Subscribe(editor.NewFontSync().Observe)
	defer unsubscribe()

	return runProgram(ui.Config{
		Registry:     reg,
		OutputFormat: opts.outputFormat,
		PersistTheme: opts.persistTheme,
		Version:      Version,
	}, builder, factory)
}

// buildRegistry returns the built-in registry extended with the themes from
// config, switched to want. An unknown theme leaves the default active.
func buildRegistry(want string, stderr io.Writer) (*theme.PaletteRegistry, error) {
	reg := theme.NewDefault()

	specs, err := config.Themes()
	if err != nil {
		return nil, apperrors.New(apperrors.CodeConfigurationError, "invalid themes in config", err)
	}
	theme.RegisterSpecs(reg, specs)

	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return reg, nil
	}
	if err := reg.Use(want); err != nil {
		if !apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, err
		}
		fmt.Fprintf(stderr, "Warning: theme %q not found, using %q\n", want, reg.ActiveName())
	}
	return reg, nil
}

func printThemes(w io.Writer, reg *theme.PaletteRegistry) {
	active := reg.ActiveName()
	for _, name := range reg.Names() {
		marker := " "
		if name == active {
			marker = "*"
		}
		p, _ := reg.Lookup(name)
		if p.DisplayName != "" && p.DisplayName != name {
			fmt.Fprintf(w, "%s %s (%s)\n", marker, name, p.DisplayName)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		if errors.Is(err, ui.ErrNoRegistry) {
			return err
		}
		return fmt.Errorf("initialize UI: %w", err)
	}
	defer app.Close()
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	theme        *string
	outputFormat *string
	persistTheme *bool
}

type runtimeOptions struct {
	theme        string
	outputFormat string
	persistTheme bool
	debug        bool
	list         bool
	applyFonts   bool
}

// computeRuntimeOptions resolves each setting from config, letting flags
// win only when they were given on the command line.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.theme)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	persist := config.GetBool(config.KeyPersistTheme)
	if flagWasExplicitlySet("persist-theme", visited) {
		persist = *flags.persistTheme
	}

	return runtimeOptions{
		theme:        themeName,
		outputFormat: outputFormat,
		persistTheme: persist,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
