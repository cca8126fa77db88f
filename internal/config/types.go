// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDirPath is returned when a configured directory path is empty
	// or whitespace-only.
	ErrInvalidDirPath = errors.New("invalid directory path")
)

type (
	// ColorScheme controls how glamour and lipgloss pick their palettes.
	ColorScheme string

	// AssetsConfig controls where channel images are looked up.
	AssetsConfig struct {
		// Dir is the root directory for channel images.
		Dir string `mapstructure:"dir"`
		// PerFamily inserts the OS family between Dir and the image name,
		// i.e. <dir>/<family>/<name>.png instead of <dir>/<name>.png.
		// Off by default; the flat layout is the current convention.
		PerFamily bool `mapstructure:"per_family"`
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose"`
		// ColorScheme selects the glamour style: auto, dark, or light.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// WatchConfig holds settings for the watch command.
	WatchConfig struct {
		// DebounceMs is the quiet period in milliseconds after the last
		// filesystem event before docs are regenerated.
		DebounceMs int `mapstructure:"debounce_ms"`
	}

	// Config is the effective cabledoc configuration.
	Config struct {
		// CableDir is the root of the channel definition tree. One
		// subdirectory per OS family lives under it.
		CableDir string `mapstructure:"cable_dir"`
		// DocsDir is where generated Markdown documents are written.
		DocsDir string `mapstructure:"docs_dir"`
		// Assets controls channel image lookup.
		Assets AssetsConfig `mapstructure:"assets"`
		// UI holds terminal output preferences.
		UI UIConfig `mapstructure:"ui"`
		// Watch holds settings for the watch command.
		Watch WatchConfig `mapstructure:"watch"`
	}
)

// Validate returns an error if the ColorScheme is not one of the recognized values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be auto, dark, or light)", ErrInvalidColorScheme, c)
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// DefaultConfig returns the configuration used when no config file exists.
// The defaults mirror the layout of the upstream application repository:
// definitions under cable/, docs under docs/01-Users/, images under
// assets/channels/.
func DefaultConfig() *Config {
	return &Config{
		CableDir: "cable",
		DocsDir:  "docs/01-Users",
		Assets: AssetsConfig{
			Dir:       "assets/channels",
			PerFamily: false,
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}

// Validate checks the configuration for values the schema cannot express.
func (c *Config) Validate() error {
	for _, dir := range []struct {
		key   string
		value string
	}{
		{"cable_dir", c.CableDir},
		{"docs_dir", c.DocsDir},
		{"assets.dir", c.Assets.Dir},
	} {
		if strings.TrimSpace(dir.value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidDirPath, dir.key)
		}
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative (got %d)", c.Watch.DebounceMs)
	}
	return nil
}
