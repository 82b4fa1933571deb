package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	KeyTheme             = "theme"
	KeyThemes            = "themes"
	KeyPersistTheme      = "persist-theme"
	KeyApplyFontSettings = "apply-font-settings"
	KeyOutputFormat      = "output-format"

	KeyEditorFontFamily = "editor.font-family"
	KeyEditorFontSize   = "editor.font-size"
	KeyEditorLineHeight = "editor.line-height"
)

const (
	// DefaultTheme matches the theme every registry starts with.
	DefaultTheme = "oceanic"

	configDirName  = ".oceanic"
	configFileName = "config.yaml"
	envPrefix      = "OC"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// Set by tests to keep writes out of the real home directory.
	userConfigPathOverride string
	workingDirOverride     string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 fetches a float configuration value, initializing on demand.
func GetFloat64(key string) float64 {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetFloat64(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// findProjectConfig walks up from startDir looking for .oceanic/config.yaml.
func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyPersistTheme, false)
	v.SetDefault(KeyApplyFontSettings, false)
	v.SetDefault(KeyOutputFormat, "rich")
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

// ColorSpec is one adaptive color from a config file. When only one side is
// set it is used for both light and dark terminals.
type ColorSpec struct {
	Light string `mapstructure:"light"`
	Dark  string `mapstructure:"dark"`
}

// ThemeSpec is a user-defined theme from the `themes:` config map.
// Colors are keyed by role name (primary, accent, background, ...).
type ThemeSpec struct {
	Base        string               `mapstructure:"base"`
	DisplayName string               `mapstructure:"display-name"`
	Colors      map[string]ColorSpec `mapstructure:"colors"`
	FontFamily  string               `mapstructure:"font-family"`
	FontSize    int                  `mapstructure:"font-size"`
	LineHeight  float64              `mapstructure:"line-height"`
}

// NamedThemeSpec is a ThemeSpec with the name it was declared under.
type NamedThemeSpec struct {
	Name string
	ThemeSpec
}

// Themes decodes the `themes:` map, sorted by name. Names are lower-cased
// by the config loader.
func Themes() ([]NamedThemeSpec, error) {
	v, err := getViper()
	if err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()

	var raw map[string]ThemeSpec
	if err := v.UnmarshalKey(KeyThemes, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyThemes, err)
	}
	out := make([]NamedThemeSpec, 0, len(raw))
	for name, spec := range raw {
		out = append(out, NamedThemeSpec{Name: name, ThemeSpec: spec})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// FontSettings are the editor font values written by SaveEditorFonts.
type FontSettings struct {
	FontFamily string
	FontSize   int
	LineHeight float64
}

// SaveTheme persists the selected theme name. If a project config
// (.oceanic/config.yaml) exists it is updated, otherwise the user config.
// The user config directory is created if needed; project config
// directories never are.
func SaveTheme(themeName string) error {
	return writeKeys(map[string]any{KeyTheme: themeName})
}

// SaveEditorFonts writes the editor font settings to the same file
// SaveTheme would, and updates the in-memory configuration.
func SaveEditorFonts(fonts FontSettings) error {
	values := map[string]any{
		KeyEditorFontFamily: fonts.FontFamily,
		KeyEditorFontSize:   fonts.FontSize,
		KeyEditorLineHeight: fonts.LineHeight,
	}
	if err := writeKeys(values); err != nil {
		return err
	}
	return ApplyOverrides(values)
}

func writeKeys(values map[string]any) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	// A fresh instance so only this file's contents are rewritten.
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	for k, val := range values {
		v.Set(k, val)
	}

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// findWritableConfigPath returns the project config path if one exists,
// otherwise the user config path.
func findWritableConfigPath() (string, error) {
	wd, err := os.Getwd()
	if workingDirOverride != "" {
		wd, err = workingDirOverride, nil
	}
	if err == nil {
		if projectPath, err := findProjectConfig(wd); err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	return defaultUserConfigPath()
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userConfigPathOverride = ""
	workingDirOverride = ""
}

// ResetForTesting clears package state for tests in other packages and
// points writes at a temp user config. Returns a cleanup function.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, configDirName, configFileName)
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	userConfigPathOverride = userCfg
	workingDirOverride = tmp
	return reset
}
