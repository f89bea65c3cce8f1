package layout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fitdash/internal/storage"
)

const (
	// KeyBase is the storage key prefix for the dashboard layout.
	KeyBase = "dashboard_widget_layout"
	// DefaultVersion is the current layout schema version tag.
	DefaultVersion = "v1"
)

// Key returns the storage key for a layout schema version. Changing the
// version orphans layouts saved under the old key.
func Key(version string) string {
	if version == "" {
		version = DefaultVersion
	}
	return KeyBase + "_" + version
}

// Adapter reads and writes the persisted layout record under one versioned key.
type Adapter struct {
	kv     storage.KV
	key    string
	logger *zap.Logger
}

// NewAdapter returns an adapter for version on kv.
func NewAdapter(kv storage.KV, version string, logger *zap.Logger) (*Adapter, error) {
	if kv == nil {
		return nil, errors.New("layout adapter: nil store")
	}
	key := Key(version)
	if err := storage.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("layout adapter: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, key: key, logger: logger}, nil
}

// Key returns the storage key in use.
func (a *Adapter) Key() string { return a.key }

// Read returns the saved entries, or nil when nothing usable is stored.
// A missing key, a read error and a malformed record are all treated as
// "no prior save"; the latter two are logged.
func (a *Adapter) Read(ctx context.Context) []PersistedEntry {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("layout read failed, using defaults", zap.String("key", a.key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	entries, err := Decode(raw)
	if err != nil {
		a.logger.Warn("stored layout is malformed, using defaults", zap.String("key", a.key), zap.Error(err))
		return nil
	}
	return entries
}

// ReadRaw returns the stored record verbatim.
func (a *Adapter) ReadRaw(ctx context.Context) (string, bool, error) {
	return a.kv.Get(ctx, a.key)
}

// Write stores entries. The caller decides how to surface a failure.
func (a *Adapter) Write(ctx context.Context, entries []PersistedEntry) error {
	raw, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := a.kv.Set(ctx, a.key, raw); err != nil {
		a.logger.Warn("layout write failed", zap.String("key", a.key), zap.Error(err))
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}
