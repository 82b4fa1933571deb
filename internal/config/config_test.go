package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != DefaultTheme {
		t.Fatalf("expected default %s to be %q, got %q", KeyTheme, DefaultTheme, got)
	}
	if GetBool(KeyApplyFontSettings) {
		t.Fatalf("expected default %s to be false", KeyApplyFontSettings)
	}
	if GetBool(KeyPersistTheme) {
		t.Fatalf("expected default %s to be false", KeyPersistTheme)
	}
	specs, err := Themes()
	if err != nil {
		t.Fatalf("Themes returned error: %v", err)
	}
	if len(specs) != 0 {
		t.Fatalf("expected no user themes by default, got %d", len(specs))
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "src", "pkg")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, configDirName, configFileName), `
theme: nord
apply-font-settings: true
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: dracula
apply-font-settings: false
persist-theme: true
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "nord" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if !GetBool(KeyApplyFontSettings) {
		t.Fatalf("expected project %s=true", KeyApplyFontSettings)
	}
	if !GetBool(KeyPersistTheme) {
		t.Fatalf("expected user-only %s to survive the merge", KeyPersistTheme)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, "project.yaml")
	writeFile(t, projectCfg, `
theme: nord
editor:
  font-size: 12
`)

	t.Setenv("OC_THEME", "material")
	t.Setenv("OC_EDITOR_FONT_SIZE", "14")

	if err := Initialize(WithWorkingDir(tmp), WithProjectConfig(projectCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "material" {
		t.Fatalf("expected env override for %s, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyEditorFontSize); got != 14 {
		t.Fatalf("expected env override for %s, got %d", KeyEditorFontSize, got)
	}

	if err := ApplyOverrides(map[string]any{KeyTheme: "dracula"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "dracula" {
		t.Fatalf("expected CLI override for %s, got %q", KeyTheme, got)
	}
}

func TestThemesDecodesUserThemes(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
themes:
  midnight:
    base: oceanic
    display-name: Oceanic Midnight
    font-size: 16
    colors:
      background:
        dark: "#0b1419"
      primary:
        light: "#0f8fb0"
        dark: "#5ccfe6"
  abyss:
    display-name: Abyss
    line-height: 1.4
`)

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	specs, err := Themes()
	if err != nil {
		t.Fatalf("Themes returned error: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 themes, got %d: %+v", len(specs), specs)
	}
	if specs[0].Name != "abyss" || specs[1].Name != "midnight" {
		t.Fatalf("expected themes sorted by name, got %q, %q", specs[0].Name, specs[1].Name)
	}

	midnight := specs[1]
	if midnight.Base != "oceanic" || midnight.DisplayName != "Oceanic Midnight" {
		t.Fatalf("unexpected midnight spec: %+v", midnight.ThemeSpec)
	}
	if midnight.FontSize != 16 {
		t.Fatalf("expected font-size 16, got %d", midnight.FontSize)
	}
	if got := midnight.Colors["background"]; got.Dark != "#0b1419" || got.Light != "" {
		t.Fatalf("unexpected background color: %+v", got)
	}
	if got := midnight.Colors["primary"]; got.Light != "#0f8fb0" || got.Dark != "#5ccfe6" {
		t.Fatalf("unexpected primary color: %+v", got)
	}
	if specs[0].LineHeight != 1.4 {
		t.Fatalf("expected abyss line-height 1.4, got %v", specs[0].LineHeight)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	cleanup := ResetForTesting(t)
	t.Cleanup(cleanup)

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userConfigPathOverride)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "theme: nord") {
		t.Fatalf("expected saved theme in user config, got:\n%s", data)
	}
}

func TestSaveThemePrefersProjectConfig(t *testing.T) {
	cleanup := ResetForTesting(t)
	t.Cleanup(cleanup)

	projectDir := t.TempDir()
	projectCfg := filepath.Join(projectDir, configDirName, configFileName)
	writeFile(t, projectCfg, "persist-theme: true\n")
	workingDirOverride = projectDir

	if err := SaveTheme("dracula"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(projectCfg)
	if err != nil {
		t.Fatalf("read project config: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "theme: dracula") {
		t.Fatalf("expected theme in project config, got:\n%s", got)
	}
	if !strings.Contains(got, "persist-theme: true") {
		t.Fatalf("expected existing settings to be preserved, got:\n%s", got)
	}
	if _, err := os.Stat(userConfigPathOverride); !os.IsNotExist(err) {
		t.Fatalf("expected user config to be untouched, stat err = %v", err)
	}
}

func TestSaveEditorFontsUpdatesFileAndMemory(t *testing.T) {
	cleanup := ResetForTesting(t)
	t.Cleanup(cleanup)

	fonts := FontSettings{FontFamily: "Source Code Pro", FontSize: 18, LineHeight: 1.6}
	if err := SaveEditorFonts(fonts); err != nil {
		t.Fatalf("SaveEditorFonts returned error: %v", err)
	}

	if got := GetString(KeyEditorFontFamily); got != "Source Code Pro" {
		t.Fatalf("expected in-memory font family, got %q", got)
	}
	if got := GetInt(KeyEditorFontSize); got != 18 {
		t.Fatalf("expected in-memory font size 18, got %d", got)
	}
	if got := GetFloat64(KeyEditorLineHeight); got != 1.6 {
		t.Fatalf("expected in-memory line height 1.6, got %v", got)
	}

	data, err := os.ReadFile(userConfigPathOverride)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	for _, want := range []string{"font-family: Source Code Pro", "font-size: 18", "line-height: 1.6"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in saved config, got:\n%s", want, data)
		}
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
