package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	SaveDir     string
	RedisURL    string
	Output      string
	Verbose     bool
	SeedAccount bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("NORIGIN_STORAGE", "file"),
		SaveDir:     getEnvOrDefault("NORIGIN_SAVE_DIR", defaultSaveDir()),
		RedisURL:    os.Getenv("NORIGIN_REDIS_URL"),
		Output:      "text",
		Verbose:     false,
	}
}

func defaultSaveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".ninjaorigin"
	}
	return filepath.Join(base, "ninjaorigin")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
