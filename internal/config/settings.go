package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// EnvLogLevel overrides Settings.LogLevel.
const EnvLogLevel = "MINIGREP_LOG_LEVEL"

// Settings are the user-level preferences read from config.yaml.
// They only tune logging; search behaviour comes from Resolve.
type Settings struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile is the debug log path. Empty means the default under ~/.minigrep/logs.
	LogFile string `yaml:"log_file"`
	// LogMaxSizeMB is the size in megabytes before the debug log rotates.
	LogMaxSizeMB int `yaml:"log_max_size_mb"`
	// LogMaxBackups is how many rotated debug logs to keep.
	LogMaxBackups int `yaml:"log_max_backups"`
	// LogToStderr mirrors the debug log to stderr.
	LogToStderr bool `yaml:"log_to_stderr"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:      "warn",
		LogMaxSizeMB:  10,
		LogMaxBackups: 5,
	}
}

// SettingsPath returns the settings file location:
//   - $XDG_CONFIG_HOME/minigrep/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/minigrep/config.yaml (default)
func SettingsPath(lookup LookupFunc) string {
	if lookup != nil {
		if xdg, ok := lookup("XDG_CONFIG_HOME"); ok && xdg != "" {
			return filepath.Join(xdg, "minigrep", "config.yaml")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "minigrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml")
}

// LoadSettings applies, in order of increasing precedence:
//  1. DefaultSettings
//  2. The settings file at SettingsPath (a missing file is fine)
//  3. MINIGREP_LOG_LEVEL
func LoadSettings(lookup LookupFunc) (Settings, error) {
	return LoadSettingsFile(SettingsPath(lookup), lookup)
}

// LoadSettingsFile is LoadSettings with an explicit file path.
func LoadSettingsFile(path string, lookup LookupFunc) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No settings file, defaults apply.
	case err != nil:
		return Settings{}, mgerrors.New(mgerrors.ErrCodeSettingsUnreadable,
			fmt.Sprintf("cannot read settings file %s", path), err).
			WithDetail("path", path)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, mgerrors.ConfigError(
				fmt.Sprintf("cannot parse settings file %s", path), err).
				WithDetail("path", path)
		}
	}

	if lookup != nil {
		if v, ok := lookup(EnvLogLevel); ok && v != "" {
			s.LogLevel = v
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, mgerrors.ConfigError(err.Error(), err).WithDetail("path", path)
	}

	return s, nil
}

// Validate checks field ranges.
func (s Settings) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("log_level must be 'debug', 'info', 'warn', or 'error', got %q", s.LogLevel)
	}
	if s.LogMaxSizeMB < 0 {
		return fmt.Errorf("log_max_size_mb must be non-negative, got %d", s.LogMaxSizeMB)
	}
	if s.LogMaxBackups < 0 {
		return fmt.Errorf("log_max_backups must be non-negative, got %d", s.LogMaxBackups)
	}
	return nil
}
