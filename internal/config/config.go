// Package config loads commentfmt settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-commentfmt/internal/yamlutil"
)

// AppDir is the directory searched under the user config directory.
const AppDir = "go-commentfmt"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTagLength      = 200  // One open or close tag
	MaxPrefixLength   = 50   // Class prefix, e.g. "cf-"
	MaxGlyphLength    = 16   // Empty superscript default
	MaxPathLength     = 4096 // Browser binary path
	MaxURLLength      = 2048 // Browser start URL
	MaxDurationLength = 20   // "30s", "150ms"
	MaxStyleLength    = 50   // Chroma style name
)

// Theme presets.
const (
	PresetDefault = "default"
	PresetClass   = "class"
)

// Defaults applied by DefaultConfig.
const (
	DefaultEmptySuperscript = "²"
	DefaultCacheTTL         = 30 * time.Second
	DefaultBrowserTimeout   = 30 * time.Second
	DefaultDebounce         = 150 * time.Millisecond
	DefaultColorStyle       = "monokai"
	DefaultClassPrefix      = "cf-"
)

// Config holds all commentfmt settings.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Preview PreviewConfig `yaml:"preview"`
	Browser BrowserConfig `yaml:"browser"`
	Watch   WatchConfig   `yaml:"watch"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// ThemeConfig selects the markup emitted for each style. Explicit tags
// override the preset per style.
type ThemeConfig struct {
	Preset        string    `yaml:"preset"`      // "default" or "class"
	ClassPrefix   string    `yaml:"classPrefix"` // used by the "class" preset
	Bold          TagConfig `yaml:"bold"`
	Italic        TagConfig `yaml:"italic"`
	Strikethrough TagConfig `yaml:"strikethrough"`
}

// TagConfig is an open/close tag pair. Both fields empty means "use preset".
type TagConfig struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// IsZero reports whether neither tag is set.
func (t TagConfig) IsZero() bool {
	return t.Open == "" && t.Close == ""
}

// PreviewConfig controls the live preview.
type PreviewConfig struct {
	EmptySuperscript string `yaml:"emptySuperscript"` // inserted when superscript is toggled on nothing
	CacheTTL         string `yaml:"cacheTTL"`         // duration, "0" disables the cache
}

// BrowserConfig controls the rod-driven host.
type BrowserConfig struct {
	Bin       string `yaml:"bin"`       // empty = let rod download or find one
	NoSandbox bool   `yaml:"noSandbox"` // required in most containers
	Headless  *bool  `yaml:"headless"`  // nil = headless
	Timeout   string `yaml:"timeout"`   // page load timeout
	URL       string `yaml:"url"`       // page to enhance; empty = bundled comment page
}

// WatchConfig controls file watching.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// RenderConfig controls batch rendering and terminal output.
type RenderConfig struct {
	Workers    int    `yaml:"workers"`    // 0 = auto
	ColorStyle string `yaml:"colorStyle"` // chroma style for --color output
}

// AssetsConfig points at a directory overriding the built-in host assets.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Theme:   ThemeConfig{Preset: PresetDefault, ClassPrefix: DefaultClassPrefix},
		Preview: PreviewConfig{EmptySuperscript: DefaultEmptySuperscript, CacheTTL: DefaultCacheTTL.String()},
		Browser: BrowserConfig{Timeout: DefaultBrowserTimeout.String()},
		Watch:   WatchConfig{Debounce: DefaultDebounce.String()},
		Render:  RenderConfig{ColorStyle: DefaultColorStyle},
	}
}

// Validate checks field lengths and known values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	switch c.Theme.Preset {
	case "", PresetDefault, PresetClass:
	default:
		return fmt.Errorf("%w: theme.preset %q (must be %s or %s)", ErrInvalidValue, c.Theme.Preset, PresetDefault, PresetClass)
	}
	if err := validateFieldLength("theme.classPrefix", c.Theme.ClassPrefix, MaxPrefixLength); err != nil {
		return err
	}
	for name, tag := range map[string]TagConfig{
		"theme.bold":          c.Theme.Bold,
		"theme.italic":        c.Theme.Italic,
		"theme.strikethrough": c.Theme.Strikethrough,
	} {
		if tag.IsZero() {
			continue
		}
		if tag.Open == "" || tag.Close == "" {
			return fmt.Errorf("%w: %s needs both open and close", ErrInvalidValue, name)
		}
		if err := validateFieldLength(name+".open", tag.Open, MaxTagLength); err != nil {
			return err
		}
		if err := validateFieldLength(name+".close", tag.Close, MaxTagLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("preview.emptySuperscript", c.Preview.EmptySuperscript, MaxGlyphLength); err != nil {
		return err
	}
	if err := validateDuration("preview.cacheTTL", c.Preview.CacheTTL, true); err != nil {
		return err
	}

	if err := validateFieldLength("browser.bin", c.Browser.Bin, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("browser.url", c.Browser.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateDuration("browser.timeout", c.Browser.Timeout, false); err != nil {
		return err
	}

	if err := validateDuration("watch.debounce", c.Watch.Debounce, true); err != nil {
		return err
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers must be >= 0, got %d", ErrInvalidValue, c.Render.Workers)
	}
	return validateFieldLength("render.colorStyle", c.Render.ColorStyle, MaxStyleLength)
}

// CacheTTL returns the parsed preview cache TTL, or the default when unset.
func (c *Config) CacheTTL() time.Duration {
	return durationOr(c.Preview.CacheTTL, DefaultCacheTTL)
}

// BrowserTimeout returns the parsed page load timeout, or the default when unset.
func (c *Config) BrowserTimeout() time.Duration {
	return durationOr(c.Browser.Timeout, DefaultBrowserTimeout)
}

// Debounce returns the parsed watch debounce, or the default when unset.
func (c *Config) Debounce() time.Duration {
	return durationOr(c.Watch.Debounce, DefaultDebounce)
}

// Headless reports whether the browser should run without a window.
func (c *Config) Headless() bool {
	return c.Browser.Headless == nil || *c.Browser.Headless
}

// ApplyEnv overrides settings from the environment. getenv is os.Getenv in
// production.
//
//	COMMENTFMT_THEME  theme.preset
//	ROD_BROWSER_BIN   browser.bin
//	ROD_NO_SANDBOX    browser.noSandbox (any non-empty value)
//	CI                browser.noSandbox (any non-empty value)
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("COMMENTFMT_THEME"); v != "" {
		c.Theme.Preset = strings.ToLower(v)
	}
	if v := getenv("ROD_BROWSER_BIN"); v != "" {
		c.Browser.Bin = v
	}
	if getenv("ROD_NO_SANDBOX") != "" || getenv("CI") != "" {
		c.Browser.NoSandbox = true
	}
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateDuration accepts an empty value (default applies). Zero is only
// accepted where allowZero is set.
func validateDuration(fieldName, value string, allowZero bool) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxDurationLength); err != nil {
		return err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, fieldName, value, err)
	}
	if d < 0 || (d == 0 && !allowZero) {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidValue, fieldName, value)
	}
	return nil
}

func durationOr(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as name.yaml or name.yml in the working directory,
// then in the user config directory under AppDir. Unset fields keep their
// DefaultConfig values. There is no silent fallback when the file is missing.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists, in order, the files LoadConfig tries for a config
// named name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
