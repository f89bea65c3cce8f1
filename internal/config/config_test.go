package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitdash/internal/storage"
)

// isolate points every lookup at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(storage.DataDirEnv, dir)
	t.Setenv(ConfigEnv, "")
	t.Setenv(StorageEnv, "")
	t.Setenv(LogLevelEnv, "")
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, Default(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "fitdash.log"), cfg.LogPath())
	assert.Equal(t, filepath.Join(dir, "fitdash.db"), cfg.SQLitePath())
}

func TestLoad_FileInDataDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"storage: sqlite\nlayout_version: v3\nlog_level: debug\nlog_file: \"-\"\nwater_goal_ml: 3000\n"), 0o644))

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "v3", cfg.LayoutVersion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.WaterGoalMl)
	assert.Empty(t, cfg.LogPath())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: sqlite\nlog_level: warn\n"), 0o644))
	t.Setenv(ConfigEnv, path)
	t.Setenv(StorageEnv, "memory")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(Overrides{})
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage: [unclosed"), 0o644))

	_, err := Load(Overrides{})
	assert.Error(t, err)
}

func TestLoad_OverridesWinBeforeValidation(t *testing.T) {
	isolate(t)
	t.Setenv(StorageEnv, "cloud")

	_, err := Load(Overrides{})
	require.Error(t, err)

	cfg, err := Load(Overrides{Storage: StorageMemory})
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestLoad_DataDirOverrideFindsConfig(t *testing.T) {
	isolate(t)
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "config.yaml"), []byte("storage: sqlite\n"), 0o644))

	cfg, err := Load(Overrides{DataDir: other})
	require.NoError(t, err)
	assert.Equal(t, other, cfg.DataDir)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, filepath.Join(other, "fitdash.db"), cfg.SQLitePath())
}

func TestLoad_StorageOverrideBeatsFileAndEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage: sqlite\n"), 0o644))
	t.Setenv(StorageEnv, StorageFile)

	cfg, err := Load(Overrides{Storage: StorageMemory})
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown storage", func(c *Config) { c.Storage = "redis" }},
		{"empty version", func(c *Config) { c.LayoutVersion = "" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero water goal", func(c *Config) { c.WaterGoalMl = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/tmp/fitdash")
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default("/tmp/fitdash").Validate())
}
