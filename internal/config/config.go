package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kterra/match-ingest/internal/platform/logging"
)

// Commit modes. Statement mode commits each write on its own so one bad
// statement never takes out its neighbours; file mode wraps each input file
// in a single transaction.
const (
	CommitModeStatement = "statement"
	CommitModeFile      = "file"
)

// Config stores runtime configuration for the ingest run.
type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// Source files. Empty means the pass is skipped; at least one must be set.
	ParticipantCSV string
	TeamCSV        string
	TeamXLSX       string

	CommitMode string
	LogLevel   logging.Level
}

// Load reads configuration from the environment, preferring a local .env
// file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "matchstats"),
		DBUser:         strings.TrimSpace(os.Getenv("DB_USER")),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		ParticipantCSV: strings.TrimSpace(os.Getenv("PARTICIPANT_CSV")),
		TeamCSV:        strings.TrimSpace(os.Getenv("TEAM_CSV")),
		TeamXLSX:       strings.TrimSpace(os.Getenv("TEAM_XLSX")),
		CommitMode:     getEnv("COMMIT_MODE", CommitModeStatement),
		LogLevel:       logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.DBUser == "" {
		return Config{}, fmt.Errorf("DB_USER is required")
	}
	if cfg.DBPassword == "" {
		return Config{}, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.ParticipantCSV == "" && cfg.TeamCSV == "" && cfg.TeamXLSX == "" {
		return Config{}, fmt.Errorf("at least one of PARTICIPANT_CSV, TEAM_CSV, TEAM_XLSX is required")
	}
	if cfg.CommitMode != CommitModeStatement && cfg.CommitMode != CommitModeFile {
		return Config{}, fmt.Errorf("COMMIT_MODE must be %q or %q, got %q", CommitModeStatement, CommitModeFile, cfg.CommitMode)
	}

	return cfg, nil
}

// DSN builds the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
