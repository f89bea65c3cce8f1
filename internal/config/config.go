// Package config loads fitdash settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fitdash/internal/storage"
)

const (
	// ConfigEnv points at an explicit config file.
	ConfigEnv   = "FITDASH_CONFIG"
	StorageEnv  = "FITDASH_STORAGE"
	LogLevelEnv = "FITDASH_LOG_LEVEL"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds runtime settings.
type Config struct {
	DataDir       string `yaml:"data_dir"`
	Storage       string `yaml:"storage"`
	LayoutVersion string `yaml:"layout_version"`
	LogLevel      string `yaml:"log_level"`
	// LogFile defaults to <DataDir>/fitdash.log; "-" logs to stderr.
	LogFile     string `yaml:"log_file"`
	ServiceName string `yaml:"service_name"`
	WaterGoalMl int    `yaml:"water_goal_ml"`
}

// Default returns the built-in configuration rooted at dataDir.
func Default(dataDir string) Config {
	return Config{
		DataDir:       dataDir,
		Storage:       StorageFile,
		LayoutVersion: "v1",
		LogLevel:      "info",
		ServiceName:   "fitdash",
		WaterGoalMl:   2500,
	}
}

// Overrides are command-line settings. They win over the file and the
// environment; empty fields leave those alone.
type Overrides struct {
	DataDir string
	Storage string
}

// Load reads the config file ($FITDASH_CONFIG, else <data dir>/config.yaml),
// applies environment overrides, then o, and validates the result. o.DataDir
// also picks the directory searched for config.yaml. A missing file is not
// an error.
func Load(o Overrides) (Config, error) {
	dataDir := o.DataDir
	if dataDir == "" {
		var err error
		if dataDir, err = storage.DefaultDataDir(); err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
	}
	cfg := Default(dataDir)

	path := os.Getenv(ConfigEnv)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	cfg.apply(o)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(storage.DataDirEnv); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(StorageEnv); v != "" {
		c.Storage = v
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) apply(o Overrides) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.Storage != "" {
		c.Storage = o.Storage
	}
}

// Validate checks the settings that have no sensible fallback.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.LayoutVersion == "" {
		return errors.New("layout_version must not be empty")
	}
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.WaterGoalMl <= 0 {
		return fmt.Errorf("water_goal_ml must be positive, got %d", c.WaterGoalMl)
	}
	return nil
}

// LogPath returns where logs go; empty means stderr.
func (c Config) LogPath() string {
	switch c.LogFile {
	case "-":
		return ""
	case "":
		return filepath.Join(c.DataDir, "fitdash.log")
	default:
		return c.LogFile
	}
}

// SQLitePath returns the database file for the sqlite backend.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "fitdash.db")
}
