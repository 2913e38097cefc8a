package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "bulletproof.db"), cfg.Storage.DBPath)
	assert.Equal(t, filepath.Join(dir, "workout_history.csv"), cfg.Storage.CSVPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Program.Path)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "CSV"
csv_path = "/tmp/log.csv"

[log]
file = "/tmp/bulletproof.log"
level = "Debug"
json = true

[program]
path = "/tmp/program.yaml"
phase = "Phase 2"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendCSV, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/log.csv", cfg.Storage.CSVPath)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "bulletproof.db"), cfg.Storage.DBPath, "unset keys keep defaults")
	assert.Equal(t, "/tmp/bulletproof.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "/tmp/program.yaml", cfg.Program.Path)
	assert.Equal(t, "Phase 2", cfg.Program.Phase)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[storage\nbackend=", "decode config"},
		{"unknown key", "[storage]\nengine = \"sqlite\"\n", "unknown keys"},
		{"backend", "[storage]\nbackend = \"postgres\"\n", "unknown storage.backend"},
		{"level", "[log]\nlevel = \"loud\"\n", "unknown log.level"},
		{"empty db path", "[storage]\ndb_path = \"\"\n", "db_path is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BULLETPROOF_STORAGE_BACKEND", "csv")
	t.Setenv("BULLETPROOF_CSV_PATH", "/data/history.csv")
	t.Setenv("BULLETPROOF_LOG_LEVEL", "warn")
	t.Setenv("BULLETPROOF_LOG_JSON", "true")
	t.Setenv("BULLETPROOF_PROGRAM_PATH", "/data/program.yaml")

	cfg, err := Load(writeConfig(t, "[storage]\nbackend = \"sqlite\"\n"))
	require.NoError(t, err)

	assert.Equal(t, BackendCSV, cfg.Storage.Backend)
	assert.Equal(t, "/data/history.csv", cfg.Storage.CSVPath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "/data/program.yaml", cfg.Program.Path)
}

func TestLoadEnvBadBool(t *testing.T) {
	t.Setenv("BULLETPROOF_LOG_JSON", "sometimes")
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BULLETPROOF_LOG_JSON")
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "bulletproof", filepath.Base(filepath.Dir(path)))
}
