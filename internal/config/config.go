package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"elemental/internal/database"
)

type Config struct {
	DBPath          string // ELEMENTAL_DB_PATH (default per build: dev or prod)
	DataDir         string // ELEMENTAL_DATA_DIR (default per build)
	LogLevel        string // ELEMENTAL_LOG_LEVEL (default "info")
	KeyringBackend  string // ELEMENTAL_KEYRING_BACKEND (optional, e.g. "file")
	KeyringPassword string // ELEMENTAL_KEYRING_PASSWORD (file backend only)
}

func Load() (*Config, error) {
	c := &Config{
		DataDir:         envOrDefault("ELEMENTAL_DATA_DIR", database.AppDataDir()),
		LogLevel:        strings.ToLower(envOrDefault("ELEMENTAL_LOG_LEVEL", "info")),
		KeyringBackend:  os.Getenv("ELEMENTAL_KEYRING_BACKEND"),
		KeyringPassword: os.Getenv("ELEMENTAL_KEYRING_PASSWORD"),
	}
	c.DBPath = envOrDefault("ELEMENTAL_DB_PATH", database.GetDefaultDBPath())

	if _, err := logger.StringToLogLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("ELEMENTAL_LOG_LEVEL: %w", err)
	}
	if c.KeyringBackend == "file" && c.KeyringPassword == "" {
		return nil, fmt.Errorf("ELEMENTAL_KEYRING_PASSWORD is required with the file keyring backend")
	}
	return c, nil
}

// WailsLogLevel returns the configured level for the Wails logger.
func (c *Config) WailsLogLevel() logger.LogLevel {
	level, err := logger.StringToLogLevel(c.LogLevel)
	if err != nil {
		return logger.INFO
	}
	return level
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
