package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fitdash/internal/config"
	"fitdash/internal/layout"
	"fitdash/internal/logging"
	"fitdash/internal/storage"
	"fitdash/internal/telemetry"
	"fitdash/internal/widget"
)

// watcher is implemented by backends that can report external changes.
type watcher interface {
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
}

// env is everything a command needs, built from config.
type env struct {
	cfg       config.Config
	logger    *zap.Logger
	telemetry *telemetry.Provider
	kv        storage.KV
	adapter   *layout.Adapter
}

func setup(ctx context.Context, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(config.Overrides{DataDir: flags.dataDir, Storage: flags.storage})
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger}

	e.telemetry, err = telemetry.NewProvider(ctx, cfg.ServiceName)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}

	e.kv, err = openStore(ctx, cfg, logger)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.adapter, err = layout.NewAdapter(e.kv, cfg.LayoutVersion, logger)
	if err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.KV, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return storage.NewFileKV(cfg.DataDir, logger)
	case config.StorageSQLite:
		return storage.OpenSQLiteKV(ctx, cfg.SQLitePath())
	case config.StorageMemory:
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func (e *env) manager(ctx context.Context) *layout.Manager {
	return layout.NewManager(ctx, widget.DefaultRegistry(), e.adapter,
		layout.WithLogger(e.logger),
		layout.WithTracer(e.telemetry.Tracer("fitdash/layout")),
	)
}

// Close releases the store, flushes spans and syncs the log.
func (e *env) Close() {
	if e.kv != nil {
		if err := e.kv.Close(); err != nil {
			e.logger.Warn("close store", zap.Error(err))
		}
	}
	if err := e.telemetry.Shutdown(context.Background()); err != nil {
		e.logger.Warn("telemetry shutdown", zap.Error(err))
	}
	_ = e.logger.Sync()
}
