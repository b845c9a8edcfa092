package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kterra/match-ingest/internal/platform/logging"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "loader")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PARTICIPANT_CSV", "players.csv")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, "matchstats", cfg.DBName)
	require.Equal(t, "disable", cfg.DBSSLMode)
	require.Equal(t, CommitModeStatement, cfg.CommitMode)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoadRequiresCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.ErrorContains(t, err, "DB_PASSWORD")
}

func TestLoadRequiresAtLeastOneSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PARTICIPANT_CSV", "")

	_, err := Load()
	require.ErrorContains(t, err, "at least one")
}

func TestLoadRejectsUnknownCommitMode(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("COMMIT_MODE", "batch")

	_, err := Load()
	require.ErrorContains(t, err, "COMMIT_MODE")
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBName:     "matchstats",
		DBUser:     "loader",
		DBPassword: "secret",
		DBSSLMode:  "require",
	}
	require.Equal(t,
		"host=db.internal port=5433 dbname=matchstats user=loader password=secret sslmode=require",
		cfg.DSN())
}
