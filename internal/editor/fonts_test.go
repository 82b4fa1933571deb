package editor

import (
	"errors"
	"testing"

	"oceanic/internal/config"
	apperrors "oceanic/internal/errors"
	"oceanic/internal/ui/theme"
)

func newSync(enabled bool) (*FontSync, *[]config.FontSettings) {
	var saved []config.FontSettings
	return &FontSync{
		Theme:   theme.DefaultName,
		Enabled: func() bool { return enabled },
		Save: func(f config.FontSettings) error {
			saved = append(saved, f)
			return nil
		},
	}, &saved
}

func TestFontSyncAppliesOnlyForOceanic(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		switchTo  string
		wantSaves int
	}{
		{name: "enabled oceanic", enabled: true, switchTo: "oceanic", wantSaves: 1},
		{name: "disabled oceanic", enabled: false, switchTo: "oceanic", wantSaves: 0},
		{name: "enabled other theme", enabled: true, switchTo: "nord", wantSaves: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := theme.NewDefault(theme.WithLogf[theme.Palette](func(string, ...any) {}))
			reg.SwitchTo("nord")

			sync, saved := newSync(tt.enabled)
			reg.Subscribe(sync.Observe)

			if !reg.SwitchTo(tt.switchTo) {
				t.Fatalf("SwitchTo(%q) = false", tt.switchTo)
			}
			if len(*saved) != tt.wantSaves {
				t.Fatalf("saves = %d, want %d", len(*saved), tt.wantSaves)
			}
			if tt.wantSaves == 0 {
				return
			}
			got := (*saved)[0]
			want := config.FontSettings{
				FontFamily: "Source Code Pro, Menlo, Monaco, 'Courier New', monospace",
				FontSize:   18,
				LineHeight: 1.6,
			}
			if got != want {
				t.Fatalf("saved fonts = %+v, want %+v", got, want)
			}
		})
	}
}

func TestFontSyncIgnoresThemeAdded(t *testing.T) {
	sync, saved := newSync(true)
	err := sync.Observe(theme.Event[theme.Palette]{Kind: theme.ThemeAdded, Name: theme.DefaultName, Config: theme.Oceanic()})
	if err != nil {
		t.Fatalf("Observe returned %v", err)
	}
	if len(*saved) != 0 {
		t.Fatalf("ThemeAdded should not write fonts, got %d saves", len(*saved))
	}
}

func TestFontSyncSaveFailureIsReported(t *testing.T) {
	cause := errors.New("read-only config")
	var reported []error
	reg := theme.NewDefault(
		theme.WithLogf[theme.Palette](func(string, ...any) {}),
		theme.WithReporter[theme.Palette](func(_ theme.Event[theme.Palette], err error) {
			reported = append(reported, err)
		}),
	)
	reg.SwitchTo("nord")

	sync := &FontSync{
		Theme:   theme.DefaultName,
		Enabled: func() bool { return true },
		Save:    func(config.FontSettings) error { return cause },
	}
	reg.Subscribe(sync.Observe)

	if !reg.SwitchTo(theme.DefaultName) {
		t.Fatal("SwitchTo(oceanic) = false")
	}
	if reg.ActiveName() != theme.DefaultName {
		t.Fatalf("a failing observer must not undo the switch")
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d failures, want 1", len(reported))
	}
	if !errors.Is(reported[0], cause) || !apperrors.IsCode(reported[0], apperrors.CodeObserverFailed) {
		t.Fatalf("reported error = %v", reported[0])
	}
}

func TestApplyFontsSkipsEmptyTypography(t *testing.T) {
	called := false
	err := ApplyFonts(theme.Typography{}, func(config.FontSettings) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Fatalf("ApplyFonts(empty) = %v, called = %v; want nil, false", err, called)
	}
}
