// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cabledoc/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "cabledoc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// LocalConfigFileName is the per-project config file looked up in the
	// working directory when no user-level config exists.
	LocalConfigFileName = ".cabledoc.toml"
)

// ConfigDir returns the cabledoc configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the effective configuration: defaults, overlaid with the first
// config file found (explicit --config path, then the user config dir, then
// .cabledoc.toml in the working directory). Missing config files are not an
// error; malformed ones are.
func Load() (*Config, error) {
	cfg, _, err := LoadWithPath()
	return cfg, err
}

// LoadWithPath is Load plus the path of the config file actually used
// (empty when running on pure defaults).
func LoadWithPath() (*Config, string, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("cable_dir", defaults.CableDir)
	v.SetDefault("docs_dir", defaults.DocsDir)
	v.SetDefault("assets.dir", defaults.Assets.Dir)
	v.SetDefault("assets.per_family", defaults.Assets.PerFamily)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'cabledoc config init' to create a default config").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		if err := readConfigFile(v, configFilePathOverride); err != nil {
			return nil, "", err
		}
		resolvedPath = configFilePathOverride
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, "", err
		}

		userPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		switch {
		case fileExists(userPath):
			if err := readConfigFile(v, userPath); err != nil {
				return nil, "", err
			}
			resolvedPath = userPath
		case fileExists(LocalConfigFileName):
			if err := readConfigFile(v, LocalConfigFileName); err != nil {
				return nil, "", err
			}
			resolvedPath = LocalConfigFileName
		}
		// If no config file found, run on defaults (no error).
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Compare your config against 'cabledoc config show'").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// readConfigFile merges one TOML config file into Viper.
func readConfigFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}
	defer f.Close() //nolint:errcheck // read-only file

	if err := v.MergeConfig(f); err != nil {
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML syntax").
			WithSuggestion("Run 'cabledoc config init --force' to regenerate defaults").
			Wrap(err).
			BuildError()
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// DefaultConfigPath returns where CreateDefaultConfig writes its file.
func DefaultConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig creates a default config file if it doesn't exist.
// When force is true an existing file is overwritten.
func CreateDefaultConfig(force bool) (string, error) {
	cfgPath, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(cfgPath); err == nil && !force {
		return cfgPath, nil // File exists
	}

	content := GenerateTOML(DefaultConfig())
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, nil
}

// GenerateTOML generates a TOML representation of the configuration.
func GenerateTOML(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("# cabledoc configuration file.\n")
	sb.WriteString("# Paths are resolved relative to the working directory unless absolute.\n\n")

	sb.WriteString(fmt.Sprintf("cable_dir = %q\n", cfg.CableDir))
	sb.WriteString(fmt.Sprintf("docs_dir = %q\n", cfg.DocsDir))

	sb.WriteString("\n[assets]\n")
	sb.WriteString(fmt.Sprintf("dir = %q\n", cfg.Assets.Dir))
	sb.WriteString(fmt.Sprintf("per_family = %v\n", cfg.Assets.PerFamily))

	sb.WriteString("\n[ui]\n")
	sb.WriteString(fmt.Sprintf("verbose = %v\n", cfg.UI.Verbose))
	sb.WriteString(fmt.Sprintf("color_scheme = %q\n", cfg.UI.ColorScheme))

	sb.WriteString("\n[watch]\n")
	sb.WriteString(fmt.Sprintf("debounce_ms = %d\n", cfg.Watch.DebounceMs))

	return sb.String()
}
