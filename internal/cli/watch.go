/*
PURPOSE:
  Defines the 'watch' subcommand.
  Re-runs the pipeline whenever the parameter file changes, so CAD
  parameters stay in sync while the sheet is being edited.

REQUIREMENTS:
  Implementation-discovered:
  - Spreadsheet tools save via rename; watch the directory, not just the file.
  - Bursts of events are debounced into one run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Dependencies: github.com/fsnotify/fsnotify

ERROR HANDLING:
  - A failed re-run is logged; watching continues.
  - Watcher setup errors are returned.

IMPLEMENTATION RULES:
  - Stop on context cancellation (SIGINT/SIGTERM).

USAGE:
  bogie-sizer watch --params Parameters.csv -o ./cad

SELF-HEALING INSTRUCTIONS:
  - If edits are missed, raise watch_debounce in the config.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/daryltucker/bogie-sizer/internal/config"
	"github.com/daryltucker/bogie-sizer/internal/engine"
	"github.com/daryltucker/bogie-sizer/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-derive all dimensions whenever the parameter file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(applyOutputOverrides(cmd))
		if err != nil {
			return err
		}
		return watch(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addOutputFlags(watchCmd)
}

func watch(ctx context.Context, cfg *config.Config, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.Parameters)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	rerun := func() {
		if _, err := engine.Run(ctx, cfg, w); err != nil {
			output.Logger.Error("Run failed", "error", err)
		}
	}
	rerun()
	output.Logger.Info("Watching parameters", "path", cfg.Parameters)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	target := filepath.Base(cfg.Parameters)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			output.Logger.Info("Watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(cfg.WatchDebounce)
			pending = timer.C

		case <-pending:
			pending = nil
			output.Logger.Info("Parameters changed, re-running", "path", cfg.Parameters)
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.Logger.Error("File watcher error", "error", err)
		}
	}
}
