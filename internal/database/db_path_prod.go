//go:build prod

package database

import (
	"log"
	"os"
	"path/filepath"
)

// AppDataDir returns the per-user directory holding the settings database and
// the file keyring fallback. It falls back to the working directory.
func AppDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "."
	}
	return filepath.Join(configDir, "elemental")
}

// GetDefaultDBPath returns the settings database path for production mode.
func GetDefaultDBPath() string {
	return filepath.Join(AppDataDir(), "elemental.db")
}

func IsDevelopment() bool {
	return false
}
