//go:build !prod

package database

import "path/filepath"

// AppDataDir returns the directory for local app data in development mode:
// a hidden folder next to the working directory so it is easy to inspect.
func AppDataDir() string {
	return ".elemental"
}

// GetDefaultDBPath returns the settings database path for development mode.
func GetDefaultDBPath() string {
	return filepath.Join(AppDataDir(), "elemental.db")
}

func IsDevelopment() bool {
	return true
}
