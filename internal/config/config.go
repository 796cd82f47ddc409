// Package config provides the configuration directory and user defaults for
// fnsort.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Settings are the user-configurable defaults for the sort command.
// Flags passed explicitly on the command line always take precedence.
type Settings struct {
	Adjacent  bool `yaml:"adjacent"`
	KeepNames bool `yaml:"keepnames"`
}

// Dir returns the fnsort configuration directory.
//
// Resolution:
//   - $FNSORT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/fnsort if set (respects XDG on any platform)
//   - %AppData%/fnsort on Windows
//   - ~/.config/fnsort on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("FNSORT_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fnsort")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "fnsort")
		}
	}

	// macOS and Linux: ~/.config/fnsort
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fnsort")
}

// Load reads config.yaml from the configuration directory.
// A missing file (or an unresolvable directory) yields zero-value settings
// and no error; a file that exists but cannot be read or parsed is an error.
func Load() (Settings, error) {
	dir := Dir()
	if dir == "" {
		return Settings{}, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing config: %w", err)
	}
	return settings, nil
}
