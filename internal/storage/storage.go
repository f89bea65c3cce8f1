// Package storage provides durable key/value backends for small UI state:
// a directory of JSON documents, an embedded sqlite database, and an
// in-memory map. Values are opaque strings; callers own the format.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const (
	// DataDirEnv overrides the default data directory (also used by tests).
	DataDirEnv = "FITDASH_DATA_DIR"
	// DefaultDataBase is the data directory relative to the user's home.
	DefaultDataBase = ".fitdash"
)

// KV is a string key/value store. Get reports ok=false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateKey rejects keys that are empty or unsafe to use as file names.
func ValidateKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

// DefaultDataDir returns $FITDASH_DATA_DIR or ~/.fitdash.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDataBase), nil
}
