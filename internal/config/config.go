// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI and server read from the environment.
type Config struct {
	// DBPath is the SQLite database file. Ignored when DatabaseURL is set.
	DBPath string
	// DatabaseURL selects the Postgres backend when non-empty.
	DatabaseURL string
	// Table is the default draw table for commands that take --table.
	Table string
	// WeeksBack is the day-pair scan horizon.
	WeeksBack int
	// WatchDir is the CSV drop directory for 'tiraj watch'.
	WatchDir string
	// Port is the HTTP port for 'tiraj serve'.
	Port int
}

// Load reads the configuration. A .env file in the working directory is
// honored when present; real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	dataDir, err := DataDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:      getEnv("TIRAJ_DB_PATH", filepath.Join(dataDir, "tiraj.db")),
		DatabaseURL: getEnv("TIRAJ_DATABASE_URL", ""),
		Table:       getEnv("TIRAJ_TABLE", "matin"),
		WatchDir:    getEnv("TIRAJ_WATCH_DIR", filepath.Join(dataDir, "incoming")),
	}

	cfg.WeeksBack, err = getEnvInt("TIRAJ_WEEKS_BACK", 6)
	if err != nil {
		return Config{}, err
	}
	cfg.Port, err = getEnvInt("TIRAJ_PORT", 8080)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DataDir returns the tiraj data directory, creating it if needed.
// Uses $HOME/.tiraj.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".tiraj")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
