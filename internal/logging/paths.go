package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.minigrep/logs/).
// Falls back to the temp directory if the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".minigrep", "logs")
	}
	return filepath.Join(home, ".minigrep", "logs")
}

// DefaultLogPath returns the default debug log path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "minigrep.log")
}
