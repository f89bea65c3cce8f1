package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fitdash/internal/fitness"
	"fitdash/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir string
	storage string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "fitdash",
		Short:         "Fitness dashboard with a customizable widget layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default $FITDASH_DATA_DIR or ~/.fitdash)")
	root.PersistentFlags().StringVar(&flags.storage, "storage", "", "layout storage backend: file, sqlite or memory")
	root.AddCommand(newLayoutCmd(flags))
	return root
}

func runDashboard(ctx context.Context, flags *rootFlags) error {
	e, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer e.Close()

	mgr := e.manager(ctx)
	store := fitness.NewSeededStore(time.Now())
	if err := store.SetWaterGoal(e.cfg.WaterGoalMl); err != nil {
		return err
	}
	content := ui.NewFitnessContent(store, time.Now)
	app := ui.NewAppModel(ctx, mgr, content.Render, e.logger)
	app.Fitness = content

	if w, ok := e.kv.(watcher); ok {
		changes, err := w.Watch(ctx, e.adapter.Key())
		if err != nil {
			e.logger.Warn("layout watch unavailable", zap.Error(err))
		} else {
			app.Changes = changes
		}
	}

	e.logger.Info("dashboard starting",
		zap.String("session", mgr.Session()),
		zap.String("storage", e.cfg.Storage),
		zap.String("key", e.adapter.Key()))
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
